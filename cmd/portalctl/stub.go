package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innoalumni/portalkit/internal/common"
	"github.com/spf13/cobra"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stub backend implementing the portal's error contract",
	Long: "The stub serves a handful of portal routes with canned data so client\n" +
		"code can be exercised without a real backend. Failures follow the portal\n" +
		"contract: a non-2xx status with a JSON body carrying a detail field.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		registerStubRoutes(r)

		common.GetLogger().WithComponent("stub").Info("stub backend listening", "addr", addr)
		return r.Run(addr)
	},
}

func init() {
	stubCmd.Flags().String("addr", ":9001", "listen address")
}

func registerStubRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/user/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		if username == "" || password == "" {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Invalid Credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": "stub-token", "token_type": "bearer"})
	})

	r.POST("/user/register", func(c *gin.Context) {
		var body struct {
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "malformed registration payload"})
			return
		}
		if body.Password != body.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Password doesn't match Confirm password"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "message": "Successfully registered user"})
	})

	r.GET("/donation/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": "d1", "message": "for the scholarship fund", "created_at": "2024-05-01T10:00:00Z"},
			{"id": "d2", "message": "library books", "created_at": "2024-04-20T09:30:00Z"},
		})
	})

	r.POST("/donation/", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"status": http.StatusCreated, "detail": "Donation Successfully created"})
	})

	r.GET("/request_pass/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": "p1", "description": "alumni meetup", "status": "PENDING",
				"requested_date": "2024-06-01", "guest_info": "", "created_at": "2024-05-10T12:00:00Z"},
		})
	})

	r.GET("/elective_course/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": "c1", "course_name": "Distributed Systems", "instructor_name": "I. Petrov", "mode": "online"},
		})
	})
}
