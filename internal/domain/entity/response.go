package entity

import (
	"fmt"
	"net/http"
)

// GenericErrorBody is the only detail a caller sees on failure.
const GenericErrorBody = "Error generating report"

// Response is the HTTP-shaped result returned to the invoker.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SuccessResponse confirma o bucket e a chave gravados.
func SuccessResponse(bucket, key string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("Report uploaded to %s/%s", bucket, key),
	}
}

// ErrorResponse é a resposta 500 com o corpo genérico; o detalhe vai só na notificação.
func ErrorResponse() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       GenericErrorBody,
	}
}
