package entity

import "time"

type FriendStatus string

const (
	FriendStatusNone            FriendStatus = "none"
	FriendStatusRequestSent     FriendStatus = "request_sent"
	FriendStatusRequestReceived FriendStatus = "request_received"
	FriendStatusFriends         FriendStatus = "friends"
	FriendStatusBlocked         FriendStatus = "blocked"
	FriendStatusSelf            FriendStatus = "self"
)

// Friend is a directed request from FromUserID to ToUserID. When Blocked is
// set, FromUserID is the user who blocked.
type Friend struct {
	ID            string     `json:"id"`
	FromUserID    string     `json:"from_user_id"`
	ToUserID      string     `json:"to_user_id"`
	Confirmed     bool       `json:"confirmed"`
	Blocked       bool       `json:"blocked"`
	DateRequested time.Time  `json:"date_requested"`
	DateConfirmed *time.Time `json:"date_confirmed,omitempty"`
}

// Other returns the endpoint that is not userID.
func (f *Friend) Other(userID string) string {
	if f.FromUserID == userID {
		return f.ToUserID
	}
	return f.FromUserID
}

const (
	TargetTypeUser      = "user"
	TargetTypeTeamPage  = "team_page"
	TargetTypeGroupPage = "group_page"
	TargetTypeSkateMove = "skate_move"
)

func IsFollowableType(targetType string) bool {
	switch targetType {
	case TargetTypeUser, TargetTypeTeamPage, TargetTypeGroupPage, TargetTypeSkateMove:
		return true
	}
	return false
}

type Follow struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Notification struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	EventName       string     `json:"event_name"`
	InitiatorID     string     `json:"initiator_id"`
	EntityName      string     `json:"entity_name"`
	EntityID        string     `json:"entity_id"`
	PublishDateTime time.Time  `json:"publish_date_time"`
	IsRead          bool       `json:"is_read"`
	ReadDateTime    *time.Time `json:"read_date_time,omitempty"`
}

type NotificationEvent struct {
	ID        int    `json:"id"`
	EventName string `json:"event_name"`
	Enabled   bool   `json:"enabled"`
}
