package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
)

type createContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (req *createContactRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	if req.Name == "" {
		return errors.New("الاسم مطلوب")
	}
	if req.Body == "" {
		return errors.New("نص الرسالة مطلوب")
	}
	if utf8.RuneCountInString(req.Body) > common.MaxSuggestionRunes {
		return errors.New("نص الرسالة طويل جداً")
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return err
	}
	req.Email = email
	if req.Email == "" && strings.TrimSpace(req.Phone) == "" {
		return errors.New("يجب إدخال بريد إلكتروني أو رقم هاتف للتواصل")
	}
	return nil
}

func (h *Handler) contactCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createContactRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		message, err := h.contactCommands.Submit(ctx, publicapp.SubmitContactCommand{
			Name:    req.Name,
			Phone:   strings.TrimSpace(req.Phone),
			Email:   req.Email,
			Subject: req.Subject,
			Body:    req.Body,
		})
		if err != nil {
			h.logger.Error("contact submit failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في إرسال الرسالة")
			return
		}

		go h.notifyContactReceipt(context.Background(), *message)

		common.WriteJSON(h.logger, w, http.StatusCreated, contactCreatedResponse{
			ID:        message.ID,
			Reference: message.Reference,
		})
	}
}
