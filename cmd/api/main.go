package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/embedded"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// store agrupa los repositorios del almacén elegido y su ciclo de vida.
type store struct {
	users    repository.UserRepository
	products repository.ProductRepository
	pinger   httpRouter.Pinger
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacén")
	}
	defer st.close()

	creds := auth.NewCredentials(cfg.Auth.BcryptCost, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authUC := auth.NewAuthUseCase(st.users, creds, log)
	productUC := usecase.NewProductUseCase(st.products, cfg.Products.StrictNotFound, log)
	reportUC := usecase.NewInventoryReportUseCase(st.products, infrapdf.NewMarotoInventoryReport(), "Inventario de productos")

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI: http://localhost:<port>/docs (solo si existe el JSON generado)
	if _, err := os.Stat(cfg.HTTP.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerPath,
			Path:     "docs",
			Title:    "Tienda API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		AuthUC:       authUC,
		ProductUC:    productUC,
		ReportUC:     reportUC,
		Tokens:       creds,
		RequireToken: cfg.Auth.RequireToken,
		Store:        st.pinger,
		StaticDir:    cfg.HTTP.StaticDir,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		return app.Listen(cfg.HTTP.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("señal de apagado recibida, cerrando servidor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("aplicación detenida")
}

// openStore abre el almacén configurado: stoolap embebido (por defecto) o PostgreSQL.
func openStore(ctx context.Context, cfg config.DBConfig) (*store, error) {
	if cfg.Driver == config.DriverPostgres {
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			users:    postgres.NewUserRepository(pool),
			products: postgres.NewProductRepository(pool),
			pinger:   pool,
			close:    pool.Close,
		}, nil
	}

	db, err := embedded.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	return &store{
		users:    embedded.NewUserRepository(db),
		products: embedded.NewProductRepository(db),
		pinger:   db,
		close:    func() { _ = db.Close() },
	}, nil
}
