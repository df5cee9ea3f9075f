// Package sync keeps the local JSON store and the hosted backend
// consistent. Writes land locally first and are mirrored to the remote
// on a best-effort basis; reads always come from the local store, which
// reconciliation overwrites from remote snapshots at startup and on a
// fixed interval.
package sync

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"managerpro/internal/convert"
	"managerpro/internal/localstore"
	"managerpro/internal/remote"
	"managerpro/models"
)

// DefaultInterval is how often the periodic reconciliation re-runs.
// Fixed cadence, no backoff, no jitter.
const DefaultInterval = 5 * time.Minute

// Service orchestrates dual writes and reconciliation for the four
// synced tables.
type Service struct {
	backend  remote.Backend
	interval time.Duration

	users     *localstore.Table[models.User]
	customers *localstore.Table[models.Customer]
	servers   *localstore.Table[models.Server]
	banners   *localstore.Table[models.Banner]

	mu     sync.Mutex
	status Status

	cancel context.CancelFunc
	done   chan struct{}
}

// New wires the synchronizer over a local store and a remote backend.
func New(store *localstore.Store, backend remote.Backend, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		backend:   backend,
		interval:  interval,
		users:     localstore.NewTable[models.User](store, remote.TableUsers),
		customers: localstore.NewTable[models.Customer](store, remote.TableCustomers),
		servers:   localstore.NewTable[models.Server](store, remote.TableServers),
		banners:   localstore.NewTable[models.Banner](store, remote.TableBanners),
		status:    StatusOnline,
	}
}

// Users returns the local user table. Reads go straight to it.
func (s *Service) Users() *localstore.Table[models.User] { return s.users }

// Customers returns the local customer table.
func (s *Service) Customers() *localstore.Table[models.Customer] { return s.customers }

// Servers returns the local server table.
func (s *Service) Servers() *localstore.Table[models.Server] { return s.servers }

// Banners returns the local banner table.
func (s *Service) Banners() *localstore.Table[models.Banner] { return s.banners }

// Backend exposes the remote seam, used by the auth gate.
func (s *Service) Backend() remote.Backend { return s.backend }

// logOutcome records both halves of a dual write in one line. The
// remote half failing is visible only here; callers never see it.
func logOutcome(op, table, id string, remoteErr error) {
	if remoteErr != nil {
		log.Printf("[sync] %s %s/%s local=ok remote=failed: %v", op, table, id, remoteErr)
		return
	}
	log.Printf("[sync] %s %s/%s local=ok remote=ok", op, table, id)
}

// dualSave appends locally then mirrors the full row upstream. The
// returned error reflects only the local write.
func dualSave[L localstore.Record, R any](ctx context.Context, s *Service, table string, t *localstore.Table[L], toRemote func(L) R, rec L) error {
	if err := t.Save(rec); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	logOutcome("save", table, rec.RecordID(), s.backend.Upsert(ctx, table, toRemote(rec)))
	return nil
}

// dualUpsert is dualSave with replace-by-id semantics locally, used by
// bootstrap seeding so repeated runs do not duplicate the fixed-id rows.
func dualUpsert[L localstore.Record, R any](ctx context.Context, s *Service, table string, t *localstore.Table[L], toRemote func(L) R, rec L) error {
	if err := t.Upsert(rec); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	logOutcome("upsert", table, rec.RecordID(), s.backend.Upsert(ctx, table, toRemote(rec)))
	return nil
}

func dualDelete[L localstore.Record](ctx context.Context, s *Service, table string, t *localstore.Table[L], id string) error {
	if err := t.Delete(id); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	logOutcome("delete", table, id, s.backend.Delete(ctx, table, id))
	return nil
}

// SaveUser writes a new user through the dual-write path.
func (s *Service) SaveUser(ctx context.Context, u models.User) error {
	return dualSave(ctx, s, remote.TableUsers, s.users, convert.UserToRemote, u)
}

// UpdateUser applies a typed patch locally and mirrors it upstream.
func (s *Service) UpdateUser(ctx context.Context, id string, p models.UserPatch) error {
	if err := s.users.Update(id, p.Apply); err != nil {
		return fmt.Errorf("update %s: %w", remote.TableUsers, err)
	}
	logOutcome("update", remote.TableUsers, id, s.backend.Update(ctx, remote.TableUsers, id, convert.UserPatchToRemote(p)))
	return nil
}

// DeleteUser removes a user from both stores.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return dualDelete(ctx, s, remote.TableUsers, s.users, id)
}

// SaveCustomer writes a new customer through the dual-write path.
func (s *Service) SaveCustomer(ctx context.Context, c models.Customer) error {
	return dualSave(ctx, s, remote.TableCustomers, s.customers, convert.CustomerToRemote, c)
}

// UpdateCustomer applies a typed patch locally and mirrors it upstream.
func (s *Service) UpdateCustomer(ctx context.Context, id string, p models.CustomerPatch) error {
	if err := s.customers.Update(id, p.Apply); err != nil {
		return fmt.Errorf("update %s: %w", remote.TableCustomers, err)
	}
	logOutcome("update", remote.TableCustomers, id, s.backend.Update(ctx, remote.TableCustomers, id, convert.CustomerPatchToRemote(p)))
	return nil
}

// DeleteCustomer removes a customer from both stores.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return dualDelete(ctx, s, remote.TableCustomers, s.customers, id)
}

// SaveServer writes a new server through the dual-write path.
func (s *Service) SaveServer(ctx context.Context, sv models.Server) error {
	return dualSave(ctx, s, remote.TableServers, s.servers, convert.ServerToRemote, sv)
}

// UpdateServer applies a typed patch locally and mirrors it upstream.
func (s *Service) UpdateServer(ctx context.Context, id string, p models.ServerPatch) error {
	if err := s.servers.Update(id, p.Apply); err != nil {
		return fmt.Errorf("update %s: %w", remote.TableServers, err)
	}
	logOutcome("update", remote.TableServers, id, s.backend.Update(ctx, remote.TableServers, id, convert.ServerPatchToRemote(p)))
	return nil
}

// DeleteServer removes a server from both stores.
func (s *Service) DeleteServer(ctx context.Context, id string) error {
	return dualDelete(ctx, s, remote.TableServers, s.servers, id)
}

// SaveBanner writes a new banner through the dual-write path. Banners
// have no partial update; they are created whole and deleted whole.
func (s *Service) SaveBanner(ctx context.Context, b models.Banner) error {
	return dualSave(ctx, s, remote.TableBanners, s.banners, convert.BannerToRemote, b)
}

// DeleteBanner removes a banner from both stores.
func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	return dualDelete(ctx, s, remote.TableBanners, s.banners, id)
}

// reconcileTable adopts a remote snapshot wholesale. An empty snapshot
// is read as "not yet synced", never as "legitimately empty", so it
// leaves the local table alone. This asymmetry is what keeps a fresh
// or unreachable backend from wiping local data.
func reconcileTable[L localstore.Record, R any](ctx context.Context, s *Service, table string, t *localstore.Table[L], toLocal func(R) L) error {
	var rows []R
	if err := s.backend.Snapshot(ctx, table, &rows); err != nil {
		return fmt.Errorf("snapshot %s: %w", table, err)
	}
	if len(rows) == 0 {
		return nil
	}
	recs := make([]L, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, toLocal(row))
	}
	if err := t.Replace(recs); err != nil {
		return fmt.Errorf("replace %s: %w", table, err)
	}
	log.Printf("[sync] reconciled %s records=%d", table, len(recs))
	return nil
}

// Reconcile pulls all four remote snapshots in parallel and overwrites
// the corresponding local tables where the snapshot is non-empty.
func (s *Service) Reconcile(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		return reconcileTable(ctx, s, remote.TableUsers, s.users, convert.UserToLocal)
	})
	p.Go(func(ctx context.Context) error {
		return reconcileTable(ctx, s, remote.TableCustomers, s.customers, convert.CustomerToLocal)
	})
	p.Go(func(ctx context.Context) error {
		return reconcileTable(ctx, s, remote.TableServers, s.servers, convert.ServerToLocal)
	})
	p.Go(func(ctx context.Context) error {
		return reconcileTable(ctx, s, remote.TableBanners, s.banners, convert.BannerToLocal)
	})
	return p.Wait()
}

// Initialize runs the startup sequence: reconcile, then seed. Any error
// flips the connectivity state to offline, where it stays until the
// process restarts.
func (s *Service) Initialize(ctx context.Context) error {
	s.setStatus(StatusSynchronizing)
	if err := s.Reconcile(ctx); err != nil {
		s.setStatus(StatusOffline)
		return err
	}
	if err := s.Seed(ctx); err != nil {
		s.setStatus(StatusOffline)
		return err
	}
	s.setStatus(StatusOnline)
	return nil
}

// Start arms the periodic reconciliation loop. Errors during a periodic
// pass are logged and the next tick proceeds as scheduled.
func (s *Service) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Reconcile(ctx); err != nil {
					log.Printf("[sync] periodic reconcile failed: %v", err)
				}
			}
		}
	}()
}

// Stop tears down the periodic loop and waits for it to exit.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
