package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/theapemachine/a2a-bridge/pkg/a2a"
	"github.com/theapemachine/a2a-bridge/pkg/bridge"
)

/*
BridgeServer mounts the dispatcher and the public card endpoint on a fiber
app.  The dispatcher never sees fiber types; this adapter only moves bytes
and headers across the boundary.
*/
type BridgeServer struct {
	app        *fiber.App
	card       *a2a.AgentCard
	dispatcher *bridge.Dispatcher
	addr       string
}

func NewBridgeServer(cfg *bridge.Config, card *a2a.AgentCard, dispatcher *bridge.Dispatcher) *BridgeServer {
	srv := &BridgeServer{
		app: fiber.New(fiber.Config{
			AppName:      card.Name,
			ServerHeader: "A2A-Bridge",
		}),
		card:       card,
		dispatcher: dispatcher,
		addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}

	srv.app.Use(logger.New())
	srv.app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	srv.app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	srv.app.Get("/", srv.handleRoot)
	srv.app.Get(a2a.WellKnownPath, srv.handleAgentCard)
	srv.app.All("/rpc", srv.handleRPC)

	return srv
}

func (srv *BridgeServer) Start() error {
	log.Info("bridge listening", "addr", srv.addr)
	return srv.app.Listen(srv.addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (srv *BridgeServer) Shutdown() error {
	return srv.app.Shutdown()
}

func (srv *BridgeServer) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

// The card endpoint stays public and unauthenticated.
func (srv *BridgeServer) handleAgentCard(ctx fiber.Ctx) error {
	return ctx.JSON(srv.card)
}

func (srv *BridgeServer) handleRPC(ctx fiber.Ctx) error {
	creds := bridge.NewCredentials(ctx.Get("Authorization"), ctx.Get("X-API-Key"))

	resp, status := srv.dispatcher.Handle(ctx.Context(), ctx.Method(), ctx.Body(), creds)

	return ctx.Status(status).JSON(resp)
}
