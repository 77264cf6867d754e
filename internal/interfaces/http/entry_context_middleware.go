package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/listing-portal/internal/application/entrycontext"
	"github.com/tu-usuario/listing-portal/pkg/logger"
)

// LocalEntryContext key del contexto de llegada resuelto en c.Locals.
const LocalEntryContext = "entry_context"

// EntryContext resuelve el contexto de llegada por petición (query params +
// sesión sticky) y lo deja en c.Locals. El único escritor de las claves de
// sesión es el resolver; este middleware solo persiste la sesión al final.
func EntryContext(store *session.Store, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)

		var kv entrycontext.Store
		if err != nil {
			// Sin sesión utilizable: resolver solo con el query de esta petición.
			log.Warn().Err(err).Str("path", c.Path()).Msg("sesión irrecuperable, contexto de llegada sin stickiness")
			kv = noopStore{}
		} else {
			kv = sessionStore{sess: sess}
		}

		ctx := entrycontext.Resolve(func(key string) string { return c.Query(key) }, kv)
		c.Locals(LocalEntryContext, ctx)

		// Un Save fallido deja la petición servida pero el contexto sin
		// persistir: la siguiente llegada sin query no lo recordará.
		if sess != nil {
			if err := sess.Save(); err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("persistencia del contexto de llegada falló")
			}
		}
		return c.Next()
	}
}

// GetEntryContext devuelve el contexto de llegada resuelto por el middleware.
func GetEntryContext(c *fiber.Ctx) entrycontext.Context {
	v := c.Locals(LocalEntryContext)
	if v == nil {
		return entrycontext.Context{}
	}
	ctx, _ := v.(entrycontext.Context)
	return ctx
}

// sessionStore adapta la sesión de Fiber al puerto Store del resolver.
type sessionStore struct {
	sess *session.Session
}

func (s sessionStore) Get(key string) string {
	v := s.sess.Get(key)
	if v == nil {
		return ""
	}
	str, _ := v.(string)
	return str
}

func (s sessionStore) Set(key, value string) {
	s.sess.Set(key, value)
}

// noopStore store vacío para peticiones sin sesión.
type noopStore struct{}

func (noopStore) Get(string) string { return "" }
func (noopStore) Set(string, string) {}
