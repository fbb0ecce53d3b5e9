package handlers

import (
	redis_models "Farol/models/redis"
	"Farol/services/game"
	"Farol/services/redis"
	socketio_types "Farol/services/socket_io/types"
	"encoding/json"
	"log"
	"time"

	"github.com/zishang520/socket.io/v2/socket"
)

// refreshPresence stores the caller's connection status and socket id.
func refreshPresence(redisClient *redis.RedisClient, client *socket.Socket,
	username string, status redis_models.PlayerStatus) {
	err := redisClient.SavePresence(&redis_models.PlayerPresence{
		Username: username,
		Status:   status,
		LastPing: time.Now().Unix(),
		SocketID: string(client.Id()),
	})
	if err != nil {
		log.Printf("[PRESENCE-ERROR] Usuario %s: %v", username, err)
	}
}

// HandleConnection registers presence and, when a live run is waiting in
// Redis, pushes its snapshot so the client resumes where it left off.
func HandleConnection(redisClient *redis.RedisClient, client *socket.Socket, username string) {
	status := redis_models.StatusOnline

	session, err := redisClient.GetRunSession(username)
	if err != nil {
		log.Printf("[CONNECT-ERROR] Error checking run session for %s: %v", username, err)
	}

	if session != nil {
		status = redis_models.StatusInRun

		var run game.RunState
		if err := json.Unmarshal(session.Run, &run); err != nil {
			log.Printf("[CONNECT-ERROR] Corrupt run session for %s: %v", username, err)
		} else {
			log.Printf("[RECONNECT] Usuario %s resumes a run in phase %s", username, run.Phase)
			client.Emit("run_update", run.Snapshot())
		}
	}

	refreshPresence(redisClient, client, username, status)
}

// HandleDisconnecting flips presence to offline and drops the socket from
// the connection map. The run session stays, reconnections pick it up.
func HandleDisconnecting(username string, sio *socketio_types.SocketServer,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] HandleDisconnecting iniciado - Usuario: %s", username)

		if err := redisClient.MarkOffline(username); err != nil {
			log.Printf("[DISCONNECT-ERROR] Error marking %s offline: %v", username, err)
		}

		// Finally remove connection from map
		sio.RemoveConnection(username)
		log.Printf("[DISCONNECT-DONE] Usuario desconectado: %s", username)
	}
}
