package app

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"goshopops_api/config"
	"goshopops_api/internal/storefront/business"
	"goshopops_api/internal/storefront/services"
	"goshopops_api/internal/storefront/services/get"
	"goshopops_api/internal/storefront/services/update"
	"goshopops_api/internal/supplier/app/web"
	"goshopops_api/internal/supplier/app/web/handlers"
	"goshopops_api/internal/supplier/storage"
	"goshopops_api/pkg/dbconnect"
	"goshopops_api/pkg/dbconnect/migration"
	"goshopops_api/pkg/middleware"
)

// OperationsServer hosts the supplier-document reconciliation and
// pricing endpoints for the shop operator.
type OperationsServer struct {
	dbconnect.Database
	cfg *config.AppConfig
}

func NewOperationsServer(db dbconnect.Database, cfg *config.AppConfig) *OperationsServer {
	return &OperationsServer{Database: db, cfg: cfg}
}

func (s *OperationsServer) Run(addr string) {
	db, err := s.Connect()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %s", err)
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&storage.MigrationsSchema{},
		&storage.CatalogSchema{},
		&storage.CatalogSnapshot{},
		&storage.KnownCodes{},
	}
	for _, _migration := range migrationApply {
		if err := _migration.UpMigration(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}
	log.Println("Catalog migrations applied successfully!")

	apiURL := fmt.Sprintf("https://%s/admin/api/%s", s.cfg.Storefront.ShopURL, s.cfg.Storefront.ApiVersion)
	auth := services.NewTokenAuth(s.cfg.Storefront.AccessToken)
	catalogEngine := get.NewCatalogEngine(apiURL, auth, os.Stdout)
	inventoryEngine := get.NewInventoryEngine(apiURL, auth, os.Stdout)
	priceEngine := update.NewPriceEngine(apiURL, auth, os.Stdout)
	stockEngine := update.NewStockEngine(apiURL, auth, os.Stdout)

	snapshotRepo := storage.NewSnapshotRepository(db)
	snapshotService := business.NewSnapshotService(catalogEngine, snapshotRepo, os.Stdout)
	saleService := business.NewSaleService(catalogEngine, priceEngine,
		business.NewDiscountEngine(""), os.Stdout)

	web.SetupRoutes(
		handlers.NewOrderHandler(s.Database, s.cfg.Defaults),
		handlers.NewReconcileHandler(s.Database, snapshotRepo, s.cfg.Defaults),
		handlers.NewPriceHandler(s.Database, s.cfg.Defaults),
		handlers.NewCatalogHandler(s.Database, snapshotRepo, snapshotService, s.cfg.Storefront.Labels),
		handlers.NewSaleHandler(s.Database, saleService),
		handlers.NewStockHandler(s.Database, snapshotRepo, inventoryEngine, stockEngine, s.cfg.Defaults),
	)

	log.Printf("Operations server listening on %s", addr)
	if err := http.ListenAndServe(addr, middleware.PrometheusMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
