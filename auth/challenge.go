package auth

import (
	"net/http"

	"github.com/samber/mo"
)

const HeaderWWWAuthenticate = "WWW-Authenticate"

// Challenge is one `Basic realm="..."` unit contributed to the aggregate
// WWW-Authenticate header.
type Challenge struct {
	Realm Realm
}

// String renders the challenge. The realm passed configuration-time
// validation, so it is emitted verbatim with no escaping.
func (c Challenge) String() string {
	return `Basic realm="` + string(c.Realm) + `"`
}

// AppendChallenge adds a challenge to the response headers. If an earlier
// stage already set a WWW-Authenticate value, the new challenge is appended
// to the same header line, comma-separated, preserving execution order.
func AppendChallenge(h http.Header, c Challenge) {
	if existing := h.Get(HeaderWWWAuthenticate); existing != "" {
		h.Set(HeaderWWWAuthenticate, existing+", "+c.String())
		return
	}
	h.Set(HeaderWWWAuthenticate, c.String())
}

// Verbosity controls how much of a failure is disclosed to the client. The
// precise internal reason stays available for audit logging at any level.
type Verbosity string

const (
	// VerbosityDebug sets the challenge header and a reason body.
	VerbosityDebug = Verbosity("debug")
	// VerbosityNormal sets the challenge header and an empty body.
	VerbosityNormal = Verbosity("normal")
	// VerbosityMinimal sets neither the challenge header nor a body.
	VerbosityMinimal = Verbosity("minimal")
)

func (v Verbosity) String() string {
	return string(v)
}

func (v Verbosity) IsValid() bool {
	switch v {
	case VerbosityDebug, VerbosityNormal, VerbosityMinimal:
		return true
	default:
		return false
	}
}

// ResponseDirective is the concrete side effect an unauthorized outcome
// requires of the host response: status, optional challenge, optional body,
// and whether the pipeline stops after this stage.
type ResponseDirective struct {
	Status    int
	Challenge mo.Option[Challenge]
	Body      string
	Halt      bool
}

// Respond maps an unauthorized outcome plus the configured verbosity into a
// response directive. Halt is a configuration-level policy independent of
// verbosity.
func Respond(reason error, verbosity Verbosity, realm Realm, halt bool) ResponseDirective {
	d := ResponseDirective{
		Status:    http.StatusUnauthorized,
		Challenge: mo.None[Challenge](),
		Halt:      halt,
	}

	if verbosity != VerbosityMinimal {
		d.Challenge = mo.Some(Challenge{Realm: realm})
	}

	if verbosity == VerbosityDebug && reason != nil {
		d.Body = reason.Error()
	}

	return d
}
