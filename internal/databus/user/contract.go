//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import "context"

type DBRepo interface {
	UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error
	UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error
}

type IdentityCache interface {
	Evict(ctx context.Context, userID string) error
}
