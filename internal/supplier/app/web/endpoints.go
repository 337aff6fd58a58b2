package web

import (
	"log"
	"net/http"

	handlers2 "goshopops_api/internal/supplier/app/web/handlers"
	"goshopops_api/metrics"
)

func SetupRoutes(handlers ...handlers2.Handler) {
	handlerMap := make(map[string]handlers2.Handler)

	for _, handler := range handlers {
		switch h := handler.(type) {
		case *handlers2.OrderHandler:
			handlerMap["OrderHandler"] = h
		case *handlers2.ReconcileHandler:
			handlerMap["ReconcileHandler"] = h
		case *handlers2.PriceHandler:
			handlerMap["PriceHandler"] = h
		case *handlers2.CatalogHandler:
			handlerMap["CatalogHandler"] = h
		case *handlers2.SaleHandler:
			handlerMap["SaleHandler"] = h
		case *handlers2.StockHandler:
			handlerMap["StockHandler"] = h
		default:
			log.Printf("Unknown handler type: %T", h)
		}
	}

	for _, handler := range handlerMap {
		if err := handler.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
	}

	if orderHandler, ok := handlerMap["OrderHandler"].(*handlers2.OrderHandler); ok {
		http.HandleFunc("/api/order/parse", orderHandler.ParseTextHandler)
		http.HandleFunc("/api/order/csv", orderHandler.ParseCSVHandler)
	} else {
		log.Fatalf("OrderHandler not provided")
	}

	if reconcileHandler, ok := handlerMap["ReconcileHandler"].(*handlers2.ReconcileHandler); ok {
		http.HandleFunc("/api/reconcile", reconcileHandler.ReconcileOrderHandler)
	} else {
		log.Fatalf("ReconcileHandler not provided")
	}

	if priceHandler, ok := handlerMap["PriceHandler"].(*handlers2.PriceHandler); ok {
		http.HandleFunc("/api/prices", priceHandler.PreviewHandler)
	} else {
		log.Fatalf("PriceHandler not provided")
	}

	if catalogHandler, ok := handlerMap["CatalogHandler"].(*handlers2.CatalogHandler); ok {
		http.HandleFunc("/api/catalog", catalogHandler.GetCatalogHandler)
		http.HandleFunc("/api/catalog/refresh", catalogHandler.RefreshHandler)
		http.HandleFunc("/api/catalog/labels", catalogHandler.LabelsHandler)
	} else {
		log.Fatalf("CatalogHandler not provided")
	}

	if saleHandler, ok := handlerMap["SaleHandler"].(*handlers2.SaleHandler); ok {
		http.HandleFunc("/api/sales/apply", saleHandler.ApplySalesHandler)
		http.HandleFunc("/api/sales/revert", saleHandler.RevertSalesHandler)
	} else {
		log.Fatalf("SaleHandler not provided")
	}

	if stockHandler, ok := handlerMap["StockHandler"].(*handlers2.StockHandler); ok {
		http.HandleFunc("/api/stock/apply", stockHandler.ApplyStockHandler)
	} else {
		log.Fatalf("StockHandler not provided")
	}

	http.Handle("/metrics", metrics.MetricsHandler())
}
