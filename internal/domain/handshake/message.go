package handshake

import (
	"fmt"
	"strings"
	"time"
)

// ShareMessageParams is everything the human-readable share text embeds. The
// message is the protocol's only output toward the out-of-band channel;
// transport (SMS, WhatsApp, a phone call) is not this service's concern.
type ShareMessageParams struct {
	RecorderName     string
	CounterpartyName string
	AmountDisplay    string
	Direction        string // "given" or "taken", recorder's point of view
	LoanDate         time.Time
	Code             string
	VerifyURL        string
	ExpiresAt        time.Time
}

func BuildShareMessage(p ShareMessageParams) string {
	verb := "lent you"
	if p.Direction == "taken" {
		verb = "borrowed from you"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! %s has recorded that they %s %s on %s.",
		p.CounterpartyName, p.RecorderName, verb, p.AmountDisplay, p.LoanDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, " Please confirm with code %s at %s", p.Code, p.VerifyURL)
	fmt.Fprintf(&b, " (valid till %s).", p.ExpiresAt.Format("02 Jan 2006"))
	b.WriteString(" No app needed.")
	return b.String()
}

// VerifyURL builds the public link that embeds the code. Routing convenience
// only; the code itself is the secret, the path is not a security boundary.
func VerifyURL(baseURL, code string) string {
	return strings.TrimSuffix(baseURL, "/") + "/v/" + code
}
