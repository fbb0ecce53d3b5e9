package utils

import (
	"errors"
	"fmt"

	models "Farol/models/postgres"

	"gorm.io/gorm"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/gin-gonic/gin"
)

// Check that the account exists before letting a socket client act
func UserExists(db *gorm.DB, email string, client *socket.Socket) error {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		fmt.Println("User does not exist:", email)
		client.Emit("error", gin.H{"error": "User does not exist"})
	}
	return err
}

func GetUsernameFromClient(client *socket.Socket) (string, error) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No username provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing username"})
		return "", errors.New("Authentication data missing")
	}

	username, exists := authData["username"].(string)
	if !exists {
		return "", errors.New("Username not found in authentication")
	}

	return username, nil
}
