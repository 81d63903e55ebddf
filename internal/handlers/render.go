package handlers

import (
	"field-sales/internal/models"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and makes the logged-in user available to every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
		}
	}

	c.HTML(status, tmpl, data)
}

// currentUser pulls the user hydrated by middleware.InjectUser, if any.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	u, ok := uVal.(models.User)
	return u, ok
}
