package http

import (
	"encoding/json"
	"net/http"

	"mortgage-agent/domain"
	"mortgage-agent/service"
)

type PaymentHandler struct {
	service *service.AmortizationService
}

func NewPaymentHandler(service *service.AmortizationService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) CalculatePayment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculatePayment(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
