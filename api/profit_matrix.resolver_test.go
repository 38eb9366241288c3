package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdrittgers/business-app-sub007/internal/domain"
	mock_repository "github.com/jdrittgers/business-app-sub007/internal/repository/mocks"
	"github.com/jdrittgers/business-app-sub007/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_profitMatrixStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid farm id is a 400", func(t *testing.T) {
		handler := ApiHandler{}
		router := handler.InitializeRouterEngine()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/businesses/%s/farms/not-a-uuid/profit-matrix", uuid.New()), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, 400, w.Code)
	})

	t.Run("unknown farm is a 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		farmRepository := mock_repository.NewMockFarmRepository(ctrl)
		farmRepository.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrFarmNotFound)

		handler := ApiHandler{
			ProfitMatrixService: service.ProfitMatrixService{
				FarmRepository: farmRepository,
			},
		}
		router := handler.InitializeRouterEngine()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/businesses/%s/farms/%s/profit-matrix", uuid.New(), uuid.New()), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, 404, w.Code)
	})
}
