package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/pairs/pkg/game/types"
	"github.com/cbodonnell/pairs/pkg/log"
	"github.com/cbodonnell/pairs/pkg/repositories"
	"github.com/cbodonnell/pairs/pkg/repositories/models"
	"github.com/gorilla/mux"
)

// LeaderboardKind selects the table served by HandleLeaderboard.
type LeaderboardKind string

const (
	LeaderboardKindSolo   LeaderboardKind = "solo"
	LeaderboardKindBattle LeaderboardKind = "battle"
)

// CreateSoloResultRequest is the body of POST /hall-of-fame. Counters are
// pointers so that a missing field is told apart from zero.
type CreateSoloResultRequest struct {
	Name        string `json:"name" validate:"required,max=32"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=easy medium hard ultrahard"`
	TimeSeconds *int   `json:"time_seconds" validate:"required,min=0"`
	Reveals     *int   `json:"reveals" validate:"required,min=0"`
}

// CreateBattleResultRequest is the body of POST /battles.
type CreateBattleResultRequest struct {
	Player1      string `json:"player1" validate:"required,max=32"`
	Player2      string `json:"player2" validate:"required,max=32"`
	Player1Score *int   `json:"player1_score" validate:"required,min=0"`
	Player2Score *int   `json:"player2_score" validate:"required,min=0"`
	Winner       string `json:"winner" validate:"required"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard ultrahard"`
}

// CreatedResponse answers a successful POST.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func HandleListCards(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := repository.ListCards(r.Context())
		if err != nil {
			log.Error("failed to list cards: %v", err)
			http.Error(w, "Failed to list cards", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, cards)
	}
}

func HandleListSoloResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := repository.ListSoloResults(r.Context(), repositories.SoloResultsLimit)
		if err != nil {
			log.Error("failed to list solo results: %v", err)
			http.Error(w, "Failed to list hall of fame", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func HandleCreateSoloResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &CreateSoloResultRequest{}
		if !decodeAndValidate(w, r, req) {
			return
		}

		result, err := repository.SaveSoloResult(r.Context(), &models.SoloResult{
			Name:        req.Name,
			Difficulty:  req.Difficulty,
			TimeSeconds: *req.TimeSeconds,
			Reveals:     *req.Reveals,
		})
		if err != nil {
			log.Error("failed to save solo result: %v", err)
			http.Error(w, "Failed to save result", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

func HandleGetSoloResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		result, err := repository.GetSoloResult(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Result not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get solo result %d: %v", id, err)
			http.Error(w, "Failed to get result", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func HandleListBattleResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := repository.ListBattleResults(r.Context(), repositories.BattleResultsLimit)
		if err != nil {
			log.Error("failed to list battle results: %v", err)
			http.Error(w, "Failed to list battles", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func HandleCreateBattleResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &CreateBattleResultRequest{}
		if !decodeAndValidate(w, r, req) {
			return
		}
		if req.Winner != req.Player1 && req.Winner != req.Player2 && req.Winner != types.TieWinner {
			http.Error(w, "winner must be one of the players or tie", http.StatusBadRequest)
			return
		}

		result, err := repository.SaveBattleResult(r.Context(), &models.BattleResult{
			Player1:      req.Player1,
			Player2:      req.Player2,
			Player1Score: *req.Player1Score,
			Player2Score: *req.Player2Score,
			Winner:       req.Winner,
			Difficulty:   req.Difficulty,
		})
		if err != nil {
			log.Error("failed to save battle result: %v", err)
			http.Error(w, "Failed to save battle", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, CreatedResponse{ID: result.ID})
	}
}

func HandleGetBattleResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		result, err := repository.GetBattleResult(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Battle not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get battle result %d: %v", id, err)
			http.Error(w, "Failed to get battle", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// HandleLeaderboard serves the hall of fame or the recent battles.
func HandleLeaderboard(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch LeaderboardKind(mux.Vars(r)["kind"]) {
		case LeaderboardKindSolo:
			HandleListSoloResults(repository)(w, r)
		case LeaderboardKindBattle:
			HandleListBattleResults(repository)(w, r)
		default:
			http.Error(w, "Unknown leaderboard", http.StatusNotFound)
		}
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Failed to parse id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
