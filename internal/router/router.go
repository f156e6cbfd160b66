package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	SearchUsers(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	GetUserTickets(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	SearchEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEventTickets(c *ginext.Context)

	BookTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.SearchUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.GET("/users/:id/tickets", h.GetUserTickets)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.SearchEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.GET("/events/:id/tickets", h.GetEventTickets)

		// Tickets
		api.POST("/tickets", h.BookTicket)
		api.DELETE("/tickets/:id", h.CancelTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
