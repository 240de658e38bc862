package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unistay/api/internal/catalog"
	"unistay/api/internal/middleware"
	"unistay/api/internal/models"
	"unistay/api/internal/policy"
)

func (h HandlerSet) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Session":  middleware.SessionFrom(c),
		"Featured": catalog.Featured(),
	})
}

func (h HandlerSet) AuthPage(c *gin.Context) {
	// Already signed-in visitors are sent to their dashboard.
	if middleware.SessionFrom(c) != nil {
		c.Redirect(http.StatusFound, policy.DashboardPath)
		return
	}
	c.HTML(http.StatusOK, "auth.tmpl", gin.H{})
}

func (h HandlerSet) PropertiesPage(c *gin.Context) {
	listings := catalog.Listings()
	c.HTML(http.StatusOK, "properties.tmpl", gin.H{
		"Session":  middleware.SessionFrom(c),
		"Listings": listings,
		"Count":    len(listings),
	})
}

func (h HandlerSet) PropertyPage(c *gin.Context) {
	listing, ok := catalog.ListingByID(c.Param("id"))
	if !ok {
		c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{
			"Session": middleware.SessionFrom(c),
		})
		return
	}
	c.HTML(http.StatusOK, "property.tmpl", gin.H{
		"Session": middleware.SessionFrom(c),
		"Listing": listing,
	})
}

func (h HandlerSet) BlogPage(c *gin.Context) {
	c.HTML(http.StatusOK, "blog.tmpl", gin.H{
		"Session": middleware.SessionFrom(c),
		"Posts":   catalog.Posts(),
	})
}

func (h HandlerSet) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Session": middleware.SessionFrom(c),
	})
}

// The dashboard pages re-check the session themselves even though the route
// gate already ran. The re-check renders a blank page instead of redirecting;
// it adds no policy of its own, it is a second enforcement layer.

func (h HandlerSet) DashboardPage(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		c.HTML(http.StatusOK, "blank.tmpl", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Session": session,
	})
}

func (h HandlerSet) AgentDashboardPage(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if !policy.CanActAs(session, models.RoleAgent) {
		c.HTML(http.StatusOK, "blank.tmpl", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "agent_dashboard.tmpl", gin.H{
		"Session": session,
		"Stats":   h.stats.Snapshot(c.Request.Context()),
	})
}

func (h HandlerSet) AdminDashboardPage(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if !policy.CanActAs(session, models.RoleAdmin) {
		c.HTML(http.StatusOK, "blank.tmpl", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.tmpl", gin.H{
		"Session": session,
		"Stats":   h.stats.Snapshot(c.Request.Context()),
	})
}
