package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	model "github.com/Hankiiee/devstep/internal/models"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Created répond 201 avec la ressource créée
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, APIResponse{Success: true, Data: data})
}

func Error(w http.ResponseWriter, status int, err string) {
	LogError("[%d] %s", status, err)
	JSON(w, status, APIResponse{Success: false, Error: err})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}

// ErrorFrom traduit la taxonomie d'erreurs métier en statut HTTP
func ErrorFrom(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case model.IsNotFound(err):
		Error(w, http.StatusNotFound, err.Error())
	case model.IsConflict(err):
		Error(w, http.StatusConflict, err.Error())
	case model.IsState(err):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
