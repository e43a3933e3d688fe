package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-service/internal/item/delivery/http"
	itemUC "item-service/internal/item/usecase"
	"item-service/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(r, h, mw)
func (srv HTTPServer) setupItemDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) error {
	// 1. UseCase
	uc := itemUC.New(srv.itemRepo)

	// 2. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 3. Routes: registers /item
	itemHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
