package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/controllers"
	"github.com/cldops/trainroom-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimitAuth(), controllers.Register)
			auth.POST("/login", middleware.RateLimitAuth(), controllers.Login)
			auth.POST("/reset-password", middleware.RateLimitAuth(), controllers.ResetPassword)
		}

		// Public lookup for calendar annotation.
		api.GET("/holidays", controllers.ListHolidays)

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
			protected.GET("/dashboard", controllers.Dashboard)

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", controllers.CreateBooking)
				bookings.GET("", controllers.ListBookings)
				bookings.GET("/events", controllers.BookingEvents)
				bookings.PUT("/:id", middleware.CheckBookingOwner(), controllers.UpdateBooking)
				bookings.DELETE("/:id", middleware.CheckBookingOwner(), controllers.CancelBooking)
			}

			rooms := protected.Group("/rooms")
			{
				rooms.GET("", controllers.ListRooms)
				rooms.GET("/:id", controllers.GetRoomDetail)
			}

			trips := protected.Group("/trips")
			{
				trips.GET("", controllers.ListTrips)
				trips.POST("", controllers.CreateTrip)
			}

			todos := protected.Group("/todos")
			{
				todos.GET("", controllers.ListTodos)
				todos.POST("", controllers.CreateTodo)
				todos.PUT("/:id/toggle", controllers.ToggleTodo)
				todos.DELETE("/:id", controllers.DeleteTodo)
			}

			chat := protected.Group("/chat")
			{
				chat.GET("/messages", controllers.ChatMessages)
				chat.POST("/messages", controllers.SendChatMessage)
				chat.DELETE("/messages/:id", controllers.DeleteChatMessage)
			}

			projects := protected.Group("/projects")
			{
				projects.GET("", controllers.ListProjects)
				projects.POST("", controllers.CreateProject)
				projects.PUT("/:id/status", controllers.UpdateProjectStatus)
			}

			protected.POST("/password-requests", controllers.RequestPasswordChange)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/dashboard", controllers.AdminDashboard)

				admin.POST("/rooms", controllers.CreateRoom)
				admin.PUT("/rooms/:id", controllers.UpdateRoom)
				admin.DELETE("/rooms/:id", controllers.DeleteRoom)

				admin.POST("/holidays", controllers.CreateHoliday)
				admin.DELETE("/holidays/:id", controllers.DeleteHoliday)

				admin.GET("/users", controllers.ListUsers)
				admin.PUT("/users/:id", controllers.UpdateUser)
				admin.POST("/users/:id/approve", controllers.ApproveUser)
				admin.POST("/users/:id/reject", controllers.RejectUser)
				admin.POST("/users/:id/deactivate", controllers.DeactivateUser)
				admin.DELETE("/users/:id", controllers.DeleteUser)

				admin.GET("/password-requests", controllers.ListPasswordRequests)
				admin.POST("/password-requests/:id/approve", controllers.ApprovePasswordChange)
				admin.POST("/password-requests/:id/reject", controllers.RejectPasswordChange)

				admin.GET("/notifications/password-requests", controllers.PendingPasswordRequests)
				admin.GET("/notifications/registrations", controllers.PendingRegistrations)

				admin.DELETE("/projects/:id", controllers.DeleteProject)

				admin.GET("/billing", controllers.BillingReport)
				admin.GET("/export/bookings", controllers.ExportBookings)
				admin.GET("/export/billing", controllers.ExportBilling)
			}
		}
	}
}
