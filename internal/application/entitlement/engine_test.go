package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/listing-portal/internal/application/entitlement"
	"github.com/tu-usuario/listing-portal/internal/application/entrycontext"
	"github.com/tu-usuario/listing-portal/internal/application/identity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia de giro efectivo
// ──────────────────────────────────────────────────────────────────────────────

func TestEffectiveCompanyType_IdentidadGanaALlegada(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Media"}
	arrival := entrycontext.Context{CompanyType: "Textile"}
	assert.Equal(t, "Media", entitlement.EffectiveCompanyType(snap, arrival))
}

func TestEffectiveCompanyType_SinIdentidadUsaLlegada(t *testing.T) {
	arrival := entrycontext.Context{CompanyType: "Textile"}
	assert.Equal(t, "Textile", entitlement.EffectiveCompanyType(identity.Snapshot{}, arrival))
}

func TestEffectiveCompanyType_AmbosVaciosUsaPlaceholder(t *testing.T) {
	assert.Equal(t, "Others", entitlement.EffectiveCompanyType(identity.Snapshot{}, entrycontext.Context{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Política admin-catálogo-completo
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminAll_PoliticaAdminSource(t *testing.T) {
	p := entitlement.PolicyAdminSource
	assert.True(t, entitlement.AdminAll(p, true, "admin"))
	// Admin por el embed del dashboard se trata como usuario normal por giro.
	assert.False(t, entitlement.AdminAll(p, true, "dashboard"))
	assert.False(t, entitlement.AdminAll(p, true, ""))
	assert.False(t, entitlement.AdminAll(p, false, "admin"))
}

func TestAdminAll_PoliticaNonDashboard(t *testing.T) {
	p := entitlement.PolicyNonDashboard
	assert.True(t, entitlement.AdminAll(p, true, "admin"))
	assert.True(t, entitlement.AdminAll(p, true, ""), "origen ausente no es dashboard")
	assert.False(t, entitlement.AdminAll(p, true, "dashboard"))
	assert.False(t, entitlement.AdminAll(p, false, "partner"))
}

func TestParsePolicy_DesconocidoCaeAAdminSource(t *testing.T) {
	assert.Equal(t, entitlement.PolicyAdminSource, entitlement.ParsePolicy("lo-que-sea"))
	assert.Equal(t, entitlement.PolicyNonDashboard, entitlement.ParsePolicy("non-dashboard"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate
// ──────────────────────────────────────────────────────────────────────────────

// Giro Media, no admin: exactamente {mediaonline, mediaoffline} y cero bonos.
func TestEvaluate_MediaNoAdmin(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Media"}
	eff := entitlement.Evaluate(snap, entrycontext.Context{}, entitlement.PolicyAdminSource)

	require.Len(t, eff.AllowedCategories, 2)
	assert.Equal(t, "mediaonline", eff.AllowedCategories[0].Slug)
	assert.Equal(t, "mediaoffline", eff.AllowedCategories[1].Slug)
	assert.Empty(t, eff.AllowedVouchers)
}

// Admin llegando por la consola admin ve el catálogo completo aunque su giro
// no mapee la categoría pedida.
func TestEvaluate_AdminPorConsolaVeTodo(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Hotels", IsAdmin: true}
	arrival := entrycontext.Context{Source: "admin"}
	eff := entitlement.Evaluate(snap, arrival, entitlement.PolicyAdminSource)

	assert.Len(t, eff.AllowedCategories, 10)
	assert.True(t, eff.AllowsCategory("mediaonline"))
	assert.Len(t, eff.AllowedVouchers, 11)
}

// El mismo admin por el dashboard queda acotado a su giro.
func TestEvaluate_AdminPorDashboardQuedaAcotado(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Hotels", IsAdmin: true}
	arrival := entrycontext.Context{Source: "dashboard"}
	eff := entitlement.Evaluate(snap, arrival, entitlement.PolicyAdminSource)

	assert.Empty(t, eff.AllowedCategories, "Hotels es giro solo-bonos")
	assert.False(t, eff.AllowsCategory("mediaonline"))
}

// Others solo tiene otherVoucher: hotelsVoucher queda denegado.
func TestEvaluate_OthersNoPublicaBonoDeHotel(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Others"}
	eff := entitlement.Evaluate(snap, entrycontext.Context{}, entitlement.PolicyAdminSource)

	assert.False(t, eff.AllowsVoucher("hotelsVoucher"))
	assert.True(t, eff.AllowsVoucher("otherVoucher"))
}

// Entertainment & Events: cero categorías de producto (intencional) pero con bonos.
func TestEvaluate_EntretenimientoSinProductos(t *testing.T) {
	snap := identity.Snapshot{CompanyTypeName: "Entertainment & Events"}
	eff := entitlement.Evaluate(snap, entrycontext.Context{}, entitlement.PolicyAdminSource)

	assert.Empty(t, eff.AllowedCategories)
	assert.False(t, eff.AllowsCategory("textile"))
	assert.True(t, eff.AllowsVoucher("eventVoucher"))
}

// Identidad aún sin resolver + llegada sin datos: cae al placeholder Others.
func TestEvaluate_SinEntradasCaeAOthers(t *testing.T) {
	eff := entitlement.Evaluate(identity.Snapshot{}, entrycontext.Context{}, entitlement.PolicyAdminSource)

	require.Len(t, eff.AllowedCategories, 1)
	assert.Equal(t, "other", eff.AllowedCategories[0].Slug)
	require.Len(t, eff.AllowedVouchers, 1)
	assert.Equal(t, "otherVoucher", eff.AllowedVouchers[0].ID)
}

// Giro desconocido en la llegada (sin identidad): default fail-open.
func TestEvaluate_GiroDesconocidoFailOpen(t *testing.T) {
	arrival := entrycontext.Context{CompanyType: "Minería"}
	eff := entitlement.Evaluate(identity.Snapshot{}, arrival, entitlement.PolicyAdminSource)

	assert.Len(t, eff.AllowedCategories, 10)
	assert.Len(t, eff.AllowedVouchers, 11)
}
