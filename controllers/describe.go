package controllers

import (
	"net/http"

	"github.com/dcode-github/estate-envision/genai"
	"github.com/dcode-github/estate-envision/services"
)

type descriptionResponse struct {
	PropertyDescription string `json:"propertyDescription"`
}

func GenerateDescription(descriptions *services.DescriptionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in genai.DescriptionInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, err)
			return
		}

		text, err := descriptions.Generate(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", descriptionResponse{PropertyDescription: text})
	}
}
