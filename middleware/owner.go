package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/models"
)

// CheckBookingOwner loads the booking into the context and verifies the
// caller owns it. Admins may act on any booking (cancel/edit on behalf of
// staff), so they pass regardless of ownership.
func CheckBookingOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
			return
		}

		var b models.Booking
		if err := config.DB.Preload("Room").First(&b, id).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}

		if b.CreatedByID != u.ID && !u.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You do not own this booking"})
			return
		}

		c.Set(CtxBooking, b)
		c.Next()
	}
}
