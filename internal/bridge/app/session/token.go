//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenGenerator=TokenGenerator"
package session

import "github.com/klwxsrx/docscan-portal/internal/bridge/domain"

type TokenGenerator interface {
	Generate() (domain.Token, error)
}
