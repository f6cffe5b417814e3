package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/user-service/pkg/user"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

const cachePrefix = "identity:"

// Client resolves staff display info from the user service, keeping answers
// in Redis for ttl. A cache outage only costs a user service round trip.
type Client struct {
	conn    *grpc.ClientConn
	users   user.UserServiceClient
	cache   *redis.Client
	ttl     time.Duration
	timeout time.Duration
}

func New(cfg *config.Config, cache *redis.Client) (*Client, error) {
	conn, err := grpc.NewClient(
		net.JoinHostPort(cfg.Identity.Host, cfg.Identity.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to user service: %w", err)
	}
	return newWithConn(conn, cache, cfg), nil
}

func newWithConn(conn *grpc.ClientConn, cache *redis.Client, cfg *config.Config) *Client {
	return &Client{
		conn:    conn,
		users:   user.NewUserServiceClient(conn),
		cache:   cache,
		ttl:     cfg.Redis.IdentityTTL,
		timeout: cfg.Identity.Timeout,
	}
}

func (c *Client) Close() {
	_ = c.conn.Close()
}

func (c *Client) ResolveDisplay(ctx context.Context, userID string) (model.UserDisplay, error) {
	if display, ok := c.cached(ctx, userID); ok {
		return display, nil
	}

	display, err := c.fetch(ctx, userID)
	if err != nil {
		return model.UserDisplay{}, err
	}

	if payload, err := json.Marshal(display); err == nil {
		_ = c.cache.Set(ctx, cachePrefix+userID, payload, c.ttl).Err()
	}
	return display, nil
}

// Evict drops the cached entry so the next lookup sees a profile change.
func (c *Client) Evict(ctx context.Context, userID string) error {
	if err := c.cache.Del(ctx, cachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to evict %s: %w", userID, err)
	}
	return nil
}

func (c *Client) cached(ctx context.Context, userID string) (model.UserDisplay, bool) {
	raw, err := c.cache.Get(ctx, cachePrefix+userID).Bytes()
	if err != nil {
		return model.UserDisplay{}, false
	}

	var display model.UserDisplay
	if err := json.Unmarshal(raw, &display); err != nil {
		return model.UserDisplay{}, false
	}
	return display, true
}

func (c *Client) fetch(ctx context.Context, userID string) (model.UserDisplay, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// the user service authenticates calls by the uuid metadata key
	requester, ok := ctx.Value(config.KeyUUID).(string)
	if !ok || requester == "" {
		requester = userID
	}
	ctx = metadata.AppendToOutgoingContext(ctx, "uuid", requester)

	resp, err := c.users.GetUserInfoByUUID(ctx, &user.GetUserInfoByUUIDIn{Uuid: userID})
	if status.Code(err) == codes.NotFound {
		return model.UserDisplay{}, fmt.Errorf("%s: %w", userID, model.ErrUserNotFound)
	}
	if err != nil {
		return model.UserDisplay{}, fmt.Errorf("failed to get user info: %w", err)
	}
	if resp.GetNickname() == "" {
		return model.UserDisplay{}, errors.New("user service returned an empty nickname")
	}

	return model.UserDisplay{Name: resp.GetNickname(), AvatarURL: resp.GetAvatar()}, nil
}
