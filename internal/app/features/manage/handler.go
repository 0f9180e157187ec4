// internal/app/features/manage/handler.go
package manage

import (
	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxBodyBytes bounds create request bodies.
const maxBodyBytes = 1 << 20

// Handler lets admins add and remove events, opportunities, and programs.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}
