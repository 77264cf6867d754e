// Package identity resuelve la identidad del usuario actual recorriendo la
// cadena usuario → empresa → nombre de giro. Los tres pasos son remotos,
// secuenciales y dependientes; solo el primero es fatal: un usuario
// autenticado con empresa irresoluble degrada a "sin entitlements", no a
// "no autenticado".
package identity

import (
	"context"
	"sync"

	"github.com/tu-usuario/listing-portal/internal/domain/entity"
	"github.com/tu-usuario/listing-portal/pkg/logger"
)

// State es el estado terminal (o no) de un ciclo de resolución. La distinción
// fatal/no-fatal por paso es un hecho del tipo, no control de flujo implícito.
type State int

const (
	// StateUnresolved aún no hay ciclo completado.
	StateUnresolved State = iota
	// StateUserFailed paso 1 falló o devolvió "no autenticado". Terminal y fatal.
	StateUserFailed
	// StateCompanyUnresolved usuario ok, empresa irresoluble. Terminal, no fatal.
	StateCompanyUnresolved
	// StateTypeNameUnresolved usuario y empresa ok, nombre de giro irresoluble
	// (o la empresa no tiene giro asignado). Terminal, no fatal.
	StateTypeNameUnresolved
	// StateResolved cadena completa.
	StateResolved
)

// Snapshot es la vista inmutable de la última resolución conocida de un usuario.
type Snapshot struct {
	State           State
	User            *entity.User
	Company         *entity.Company
	CompanyTypeName string
	IsAdmin         bool
	Loading         bool
	Error           string
}

// Directory es el puerto hacia los lookups remotos de identidad. Cada método
// puede fallar de forma independiente; nil sin error significa "no existe".
type Directory interface {
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
	OwningCompany(ctx context.Context, userID string) (*entity.Company, error)
	CompanyTypeName(ctx context.Context, companyTypeID string) (string, error)
}

// Resolver mantiene un snapshot por usuario y serializa la aplicación de
// resultados por orden de invocación: una cadena vieja que termina después de
// una nueva jamás pisa el estado más reciente (token de secuencia monótono
// comparado al completar, no orden de llegada).
type Resolver struct {
	dir Directory
	log *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	seq     uint64 // última invocación lanzada
	applied uint64 // última invocación cuyo resultado se aplicó
	snap    Snapshot
}

// NewResolver construye el resolver de identidad.
func NewResolver(dir Directory, log *logger.Logger) *Resolver {
	return &Resolver{dir: dir, log: log, sessions: make(map[string]*session)}
}

// Snapshot devuelve la última vista conocida del usuario. ok=false si nunca
// se inició una resolución para él.
func (r *Resolver) Snapshot(userID string) (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok {
		return Snapshot{}, false
	}
	return s.snap, true
}

// EnsureStarted devuelve el snapshot actual, iniciando la primera resolución
// si todavía no existe ninguna para el usuario.
func (r *Resolver) EnsureStarted(userID string) Snapshot {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	if ok {
		snap := s.snap
		r.mu.Unlock()
		return snap
	}
	s = &session{seq: 1, snap: Snapshot{Loading: true}}
	r.sessions[userID] = s
	snap := s.snap
	r.mu.Unlock()

	go r.run(userID, 1)
	return snap
}

// Refetch relanza la cadena completa desde el paso 1. Idempotente y seguro de
// llamar concurrentemente: la invocación nueva supersede a la que esté en
// vuelo (no la cancela; su resultado tardío se descarta al llegar).
func (r *Resolver) Refetch(userID string) {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	if !ok {
		s = &session{}
		r.sessions[userID] = s
	}
	s.seq++
	seq := s.seq
	s.snap.Loading = true
	r.mu.Unlock()

	go r.run(userID, seq)
}

// run ejecuta un ciclo de resolución y aplica el resultado si sigue vigente.
// Usa context.Background(): la resolución sobrevive a la petición HTTP que la
// disparó, igual que los consumidores que leerán el snapshot después.
func (r *Resolver) run(userID string, seq uint64) {
	snap := r.resolve(context.Background(), userID)
	r.commit(userID, seq, snap)
}

// resolve recorre la cadena de tres pasos. Sin reintentos automáticos: el
// reintento es responsabilidad del llamador vía Refetch.
func (r *Resolver) resolve(ctx context.Context, userID string) Snapshot {
	// Paso 1: usuario actual. Falla o ausencia = terminal para el ciclo.
	user, err := r.dir.CurrentUser(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("resolución de usuario falló")
		return Snapshot{State: StateUserFailed, Error: err.Error()}
	}
	if user == nil {
		return Snapshot{State: StateUserFailed, Error: "usuario no autenticado"}
	}

	// isAdmin depende solo del registro de usuario: sigue disponible aunque
	// los pasos 2-3 fallen.
	snap := Snapshot{User: user, IsAdmin: user.IsAdministrator()}

	// Paso 2: empresa dueña. Fallo no fatal: degrada a giro vacío sin error.
	company, err := r.dir.OwningCompany(ctx, userID)
	if err != nil || company == nil {
		if err != nil {
			r.log.Debug().Err(err).Str("user_id", userID).Msg("empresa irresoluble, degradando")
		}
		snap.State = StateCompanyUnresolved
		return snap
	}
	snap.Company = company

	// Paso 3: nombre del giro. Mismo fallo suave.
	if company.CompanyTypeID == "" {
		snap.State = StateTypeNameUnresolved
		return snap
	}
	name, err := r.dir.CompanyTypeName(ctx, company.CompanyTypeID)
	if err != nil {
		r.log.Debug().Err(err).Str("company_type_id", company.CompanyTypeID).Msg("giro irresoluble, degradando")
		snap.State = StateTypeNameUnresolved
		return snap
	}

	snap.State = StateResolved
	snap.CompanyTypeName = name
	return snap
}

// commit aplica un resultado solo si ninguna invocación más nueva aplicó ya el
// suyo. Loading queda true si hay una invocación posterior todavía en vuelo.
func (r *Resolver) commit(userID string, seq uint64, snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok {
		return
	}
	if seq <= s.applied {
		r.log.Debug().Str("user_id", userID).Uint64("seq", seq).Msg("resolución obsoleta descartada")
		return
	}
	s.applied = seq
	snap.Loading = seq < s.seq
	s.snap = snap
}
