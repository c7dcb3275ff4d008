package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/clientdesk/clientdesk/internal/cache"
	"github.com/clientdesk/clientdesk/internal/config"
	"github.com/clientdesk/clientdesk/internal/contract"
	"github.com/clientdesk/clientdesk/internal/handlers"
	"github.com/clientdesk/clientdesk/internal/middleware"
	"github.com/clientdesk/clientdesk/internal/store"
)

// RegisterRoutes binds every contract operation to its handler. Guarded
// operations go through the bearer-token middleware; login and logout
// never do.
func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config) {

	listCache := cache.New(cfg.RedisURL)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	clientHandler := handlers.NewClientHandler(st, listCache)
	developerHandler := handlers.NewDeveloperHandler(st, listCache)

	guard := middleware.AuthMiddleware(cfg)

	register := func(op contract.Operation, h gin.HandlerFunc) {
		if op.Guarded {
			r.Handle(op.Method, op.Path, guard, h)
			return
		}
		r.Handle(op.Method, op.Path, h)
	}

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	register(contract.AuthLogin, authHandler.Login)
	register(contract.AuthLogout, authHandler.Logout)

	// ------------------------------
	// CLIENTS
	// ------------------------------
	register(contract.ClientsList, clientHandler.List)
	register(contract.ClientsGet, clientHandler.Get)
	register(contract.ClientsCreate, clientHandler.Create)
	register(contract.ClientsUpdate, clientHandler.Update)
	register(contract.ClientsDelete, clientHandler.Delete)

	// ------------------------------
	// DEVELOPERS
	// ------------------------------
	register(contract.DevelopersList, developerHandler.List)
	register(contract.DevelopersGet, developerHandler.Get)
	register(contract.DevelopersCreate, developerHandler.Create)
	register(contract.DevelopersDelete, developerHandler.Delete)
}
