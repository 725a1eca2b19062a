package institute

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
)

// HeaderName é o cabeçalho enviado pelo mini-app embutido com o contexto
// do instituto parceiro
const HeaderName = "institute-id"

// Middleware extrai o institute ID do cabeçalho e o disponibiliza no
// contexto da requisição. Os lançamentos financeiros são sempre
// escopados por instituto, então o cabeçalho é obrigatório nessas rotas.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		instituteID := c.GetHeader(HeaderName)
		if instituteID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Institute ID não fornecido",
				"O cabeçalho 'institute-id' é obrigatório",
			))
			return
		}

		c.Set("institute_id", instituteID)
		c.Request = c.Request.WithContext(SetInstituteIDContext(c.Request.Context(), instituteID))

		c.Next()
	}
}
