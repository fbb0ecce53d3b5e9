package controllers

import (
	"Farol/middleware"
	models "Farol/models/postgres"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// @Summary Create a new account
// @Description Registers a user and its game profile
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Public username"
// @Param email formData string true "Account email"
// @Param password formData string true "Account password"
// @Success 201 {object} object{message=string,username=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")

		//Minimum input sanitizing
		if strings.Trim(username, " ") == "" || strings.Trim(email, " ") == "" || strings.Trim(password, " ") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var existingUser models.User
		if err := db.Where("email = ?", email).First(&existingUser).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		var existingProfile models.GameProfile
		if err := db.Where("username = ?", username).First(&existingProfile).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already in use"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
			return
		}

		// The profile goes first, users.profile_username points at it
		err = db.Transaction(func(tx *gorm.DB) error {
			profile := models.GameProfile{
				Username:  username,
				UserStats: datatypes.JSON("{}"),
				UserIcon:  1,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			user := models.User{
				Email:           email,
				ProfileUsername: username,
				PasswordHash:    string(hash),
			}
			return tx.Create(&user).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Account created", "username": username})
	}
}

// @Summary Log into an account
// @Description Checks the credentials and returns a JWT plus a session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Account email"
// @Param password formData string true "Account password"
// @Success 200 {object} object{token=string,username=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email := c.PostForm("email")
		password := c.PostForm("password")

		//Minimum input sanitizing
		if strings.Trim(email, " ") == "" || strings.Trim(password, " ") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		token, err := middleware.GenerateToken(user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
			return
		}

		session.Set("Email", user.Email)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No session!"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "username": user.ProfileUsername})
	}
}

// @Summary Log out of the server
// @Description Deletes the session associated with the Email key
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /auth/logout [delete]
// @Security ApiKeyAuth
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("Email")
	// There is no session for the user, won't delete nothing
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
		return
	}

	// Deletes the session associated with that userkey
	session.Delete("Email")
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// @Summary Get a list of all users
// @Description Returns the username and icon of every registered player
// @Tags users
// @Produce json
// @Success 200 {array} object{username=string,icon=integer}
// @Failure 500 {object} object{error=string}
// @Router /allusers [get]
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profiles []models.GameProfile
		if result := db.Find(&profiles); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
			return
		}

		simplified := make([]gin.H, len(profiles))
		for i, profile := range profiles {
			simplified[i] = gin.H{
				"username": profile.Username,
				"icon":     profile.UserIcon,
			}
		}

		c.JSON(http.StatusOK, simplified)
	}
}

// @Summary Get a user's public info
// @Description Returns the public profile of one player, lifetime stats included
// @Tags users
// @Produce json
// @Param username path string true "Username of the player"
// @Success 200 {object} object{username=string,icon=integer,in_a_run=boolean,stats=object}
// @Failure 404 {object} object{error=string}
// @Router /users/{username} [get]
func GetUserPublicInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var profile models.GameProfile
		if err := db.Where("username = ?", username).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username": profile.Username,
			"icon":     profile.UserIcon,
			"in_a_run": profile.IsInARun,
			"stats":    profile.UserStats,
		})
	}
}

// @Summary Get the logged user's private info
// @Description Returns the account and profile of the caller
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{email=string,username=string,icon=integer,member_since=string,stats=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func GetUserPrivateInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		var profile models.GameProfile
		if err := db.Where("username = ?", user.ProfileUsername).First(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"email":        user.Email,
			"username":     user.ProfileUsername,
			"icon":         profile.UserIcon,
			"member_since": user.MemberSince,
			"in_a_run":     profile.IsInARun,
			"stats":        profile.UserStats,
		})
	}
}

// @Summary Update the logged user's info
// @Description Changes the caller's icon and/or password
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param icon formData integer false "New profile icon"
// @Param password formData string false "New password"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /auth/update [patch]
// @Security ApiKeyAuth
func UpdateUserInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		icon := c.PostForm("icon")
		password := c.PostForm("password")
		if icon == "" && password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		if icon != "" {
			iconNumber, err := strconv.Atoi(icon)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Icon must be a number"})
				return
			}
			result := db.Model(&models.GameProfile{}).
				Where("username = ?", user.ProfileUsername).
				Update("user_icon", iconNumber)
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating icon"})
				return
			}
		}

		if password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
				return
			}
			result := db.Model(&models.User{}).
				Where("email = ?", user.Email).
				Update("password_hash", string(hash))
			if result.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating password"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Account updated"})
	}
}

// @Summary Delete the logged user's account
// @Description Removes the account, its profile and every archived run
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /auth/delete [delete]
// @Security ApiKeyAuth
func DeleteAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("username = ?", user.ProfileUsername).Delete(&models.RunRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("email = ?", user.Email).Delete(&models.User{}).Error; err != nil {
				return err
			}
			return tx.Where("username = ?", user.ProfileUsername).Delete(&models.GameProfile{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete account"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
	}
}
