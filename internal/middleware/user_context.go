package middleware

import (
	"field-sales/internal/database"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := database.UserByID(uid); err == nil {
					c.Set("CurrentUser", *user)
				}
			}
		}

		c.Next()
	}
}
