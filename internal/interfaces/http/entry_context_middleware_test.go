package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/listing-portal/internal/interfaces/http"
	"github.com/tu-usuario/listing-portal/pkg/logger"
)

// brokenStorage backend de sesión que falla al escribir: fuerza el error de
// persistencia del contexto de llegada sin tumbar la petición.
type brokenStorage struct{}

func (brokenStorage) Get(string) ([]byte, error) { return nil, nil }
func (brokenStorage) Set(string, []byte, time.Duration) error {
	return errors.New("backend de sesión caído")
}
func (brokenStorage) Delete(string) error { return nil }
func (brokenStorage) Reset() error        { return nil }
func (brokenStorage) Close() error        { return nil }

// Un Save fallido no debe romper la petición: el contexto del query de la
// navegación actual se sirve igual, solo se pierde la stickiness.
func TestEntryContext_SaveFallidoNoRompeLaPeticion(t *testing.T) {
	store := session.New(session.Config{Storage: brokenStorage{}})
	app := fiber.New()
	app.Get("/ctx", apphttp.EntryContext(store, logger.Nop()), func(c *fiber.Ctx) error {
		return c.JSON(apphttp.GetEntryContext(c))
	})

	resp := doGet(t, app, "/ctx?source=admin&companyType=Textile", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el fallo de persistencia no es fatal")

	var got struct {
		Source      string `json:"source"`
		CompanyType string `json:"companyType"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "admin", got.Source)
	assert.Equal(t, "Textile", got.CompanyType)
}
