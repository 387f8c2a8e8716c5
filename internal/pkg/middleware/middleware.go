package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/samber/mo"

	"github.com/frain-dev/httpauth/auth"
	"github.com/frain-dev/httpauth/auth/realm/basic"
	"github.com/frain-dev/httpauth/pkg/log"
	"github.com/frain-dev/httpauth/util"
)

type contextKey string

const authUserCtx contextKey = "authUser"

// CreateStage carries the configuration for one authentication stage.
type CreateStage struct {
	Realm     *basic.Realm
	Verbosity auth.Verbosity

	// Halt stops the pipeline on failure. When false the stage still appends
	// its challenge but lets downstream stages run, enabling chained
	// multi-scheme acceptance.
	Halt bool

	// AdvertiseUnattempted appends this stage's challenge even when the
	// request made no Basic attempt (no Authorization header, or a different
	// scheme), without halting.
	AdvertiseUnattempted bool

	Logger log.StdLogger
}

// Stage is one Basic-authentication stage in a middleware chain. Stages
// cooperate on the response: each failing stage appends its challenge to the
// same WWW-Authenticate line in execution order.
type Stage struct {
	realm                *basic.Realm
	verbosity            auth.Verbosity
	halt                 bool
	advertiseUnattempted bool
	logger               log.StdLogger
}

func NewStage(cs *CreateStage) *Stage {
	verbosity := cs.Verbosity
	if !verbosity.IsValid() {
		verbosity = auth.VerbosityNormal
	}

	logger := cs.Logger
	if logger == nil {
		logger = log.NewStdLogger()
	}

	return &Stage{
		realm:                cs.Realm,
		verbosity:            verbosity,
		halt:                 cs.Halt,
		advertiseUnattempted: cs.AdvertiseUnattempted,
		logger:               logger,
	}
}

func (s *Stage) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetAuthUserFromContext(r.Context()) != nil {
			// an earlier stage already authenticated this request
			next.ServeHTTP(w, r)
			return
		}

		header := mo.None[string]()
		values := r.Header.Values("Authorization")
		if len(values) > 1 {
			s.logger.WithFields(log.Fields{
				"realm": s.realm.Realm().String(),
				"count": len(values),
			}).Warn("multiple authorization headers on request, using the first")
		}
		if len(values) > 0 {
			header = mo.Some(values[0])
		}

		authUser, err := s.realm.Decide(r.Context(), header)
		if err == nil {
			r = r.WithContext(setAuthUserInContext(r.Context(), authUser))
			next.ServeHTTP(w, r)
			return
		}

		// the audit trail keeps the precise reason regardless of the
		// externally configured verbosity
		s.logger.WithError(err).WithFields(log.Fields{
			"realm": s.realm.Realm().String(),
			"path":  r.URL.Path,
		}).Error("basic authentication failed")

		if !auth.IsAuthError(err) {
			// resolver fault, not bad credentials
			_ = render.Render(w, r, util.NewErrorResponse("internal server error", http.StatusInternalServerError))
			return
		}

		if auth.IsUnattempted(err) && !s.halt {
			if s.advertiseUnattempted && s.verbosity != auth.VerbosityMinimal {
				auth.AppendChallenge(w.Header(), auth.Challenge{Realm: s.realm.Realm()})
			}
			next.ServeHTTP(w, r)
			return
		}

		s.apply(w, r, next, auth.Respond(err, s.verbosity, s.realm.Realm(), s.halt))
	})
}

func (s *Stage) apply(w http.ResponseWriter, r *http.Request, next http.Handler, directive auth.ResponseDirective) {
	if challenge, ok := directive.Challenge.Get(); ok {
		auth.AppendChallenge(w.Header(), challenge)
	}

	if !directive.Halt {
		next.ServeHTTP(w, r)
		return
	}

	if directive.Body != "" {
		_ = render.Render(w, r, util.NewErrorResponse(directive.Body, directive.Status))
		return
	}

	w.WriteHeader(directive.Status)
}

// RequireAuthenticated is the terminal guard of a stage chain: it rejects any
// request no stage managed to authenticate. Challenges appended by earlier
// stages are already on the response headers.
func RequireAuthenticated() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetAuthUserFromContext(r.Context()) == nil {
				_ = render.Render(w, r, util.NewErrorResponse("authorization failed", http.StatusUnauthorized))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setAuthUserInContext(ctx context.Context, authUser *auth.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserCtx, authUser)
}

func GetAuthUserFromContext(ctx context.Context) *auth.AuthenticatedUser {
	authUser, ok := ctx.Value(authUserCtx).(*auth.AuthenticatedUser)
	if !ok {
		return nil
	}
	return authUser
}
