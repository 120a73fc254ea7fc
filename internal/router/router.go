package router

import (
	"database/sql"
	"net/http"

	mem "github.com/igorjosafa/PetAdota/internal/adapters/storage/memory"
	pg "github.com/igorjosafa/PetAdota/internal/adapters/storage/postgres"
	lite "github.com/igorjosafa/PetAdota/internal/adapters/storage/sqlite"
	"github.com/igorjosafa/PetAdota/internal/domain/adopters"
	"github.com/igorjosafa/PetAdota/internal/domain/adoptions"
	"github.com/igorjosafa/PetAdota/internal/domain/breeds"
	"github.com/igorjosafa/PetAdota/internal/domain/pets"
	"github.com/igorjosafa/PetAdota/internal/domain/species"
	"github.com/igorjosafa/PetAdota/internal/middleware"
	"github.com/igorjosafa/PetAdota/internal/platform/config"
	"github.com/igorjosafa/PetAdota/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Cfg config.Config
	Log logger.Logger

	// Opcional: conexão Postgres já aberta. Se vier, ganha do Cfg.
	DB *sql.DB
}

type repos struct {
	species   species.Repository
	breeds    breeds.Repository
	pets      pets.Repository
	adopters  adopters.Repository
	adoptions adoptions.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rp := openRepos(opts, log)

	speciesSvc := species.NewService(rp.species, rp.breeds)
	breedsSvc := breeds.NewService(rp.breeds, rp.species, rp.pets)
	petsSvc := pets.NewService(rp.pets, rp.breeds)
	adoptersSvc := adopters.NewService(rp.adopters, rp.adoptions)
	adoptionsSvc := adoptions.NewService(rp.adoptions, rp.pets, rp.adopters)

	species.RegisterRoutes(r, speciesSvc)
	breeds.RegisterRoutes(r, breedsSvc)
	pets.RegisterRoutes(r, petsSvc)
	adopters.RegisterRoutes(r, adoptersSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)

	return r
}

// openRepos escolhe o backend: DB injetado > DB_DRIVER do ambiente >
// in-memory. Falha de conexão cai para in-memory com warning, para a
// API subir mesmo sem banco em dev.
func openRepos(opts Options, log logger.Logger) repos {
	db := opts.DB

	if db == nil {
		switch opts.Cfg.DBDriver {
		case "postgres":
			opened, err := pg.Open(opts.Cfg.DBDSN)
			if err != nil {
				log.Warn("postgres unavailable, falling back to in-memory store", map[string]any{"error": err.Error()})
				break
			}
			db = opened
		case "sqlite":
			opened, err := lite.Open(opts.Cfg.DBDSN)
			if err != nil {
				log.Warn("sqlite unavailable, falling back to in-memory store", map[string]any{"error": err.Error()})
				break
			}
			return repos{
				species:   lite.NewSpeciesRepo(opened),
				breeds:    lite.NewBreedsRepo(opened),
				pets:      lite.NewPetsRepo(opened),
				adopters:  lite.NewAdoptersRepo(opened),
				adoptions: lite.NewAdoptionsRepo(opened),
			}
		}
	}

	if db != nil {
		return repos{
			species:   pg.NewSpeciesRepo(db),
			breeds:    pg.NewBreedsRepo(db),
			pets:      pg.NewPetsRepo(db),
			adopters:  pg.NewAdoptersRepo(db),
			adoptions: pg.NewAdoptionsRepo(db),
		}
	}

	store := mem.NewStore()
	return repos{
		species:   store.Species(),
		breeds:    store.Breeds(),
		pets:      store.Pets(),
		adopters:  store.Adopters(),
		adoptions: store.Adoptions(),
	}
}
