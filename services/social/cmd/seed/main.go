package main

import (
	"flag"
	"fmt"
	"time"

	"mob-social/pkg/config"
	"mob-social/pkg/database"
	"mob-social/pkg/jwt"
	"mob-social/pkg/logger"
	"mob-social/pkg/models"
	"mob-social/pkg/queue"
	"mob-social/services/social/internal/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	email     string
	username  string
	firstName string
	lastName  string
	password  string
	timeZone  string
	admin     bool
}

func main() {
	var printTokens bool
	flag.BoolVar(&printTokens, "tokens", true, "Print development JWTs for the seeded users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New(logger.WithService("seed"))
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	users, admins, err := seedDatabase(db, log)
	if err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	if printTokens {
		jwtService := jwt.NewService(cfg.JWTSecret)
		for _, u := range users {
			role := models.RoleSystemNameRegistered
			if admins[u.ID] {
				role = models.RoleSystemNameAdministrators
			}
			token, err := jwtService.GenerateToken(u.ID, role)
			if err != nil {
				log.Error("Failed to generate token for %s: %v", u.Username, err)
				continue
			}
			fmt.Printf("%s\t%s\n", u.Username, token)
		}
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase returns the seeded users and the IDs of the administrators among them.
func seedDatabase(db *gorm.DB, log *logger.Logger) ([]models.User, map[string]bool, error) {
	testUsers := []seedUser{
		{"alice@test.com", "alice", "Alice", "Ollie", "password123", "Europe/Berlin", true},
		{"bob@test.com", "bob", "Bob", "Kickflip", "password123", "America/New_York", false},
		{"charlie@test.com", "charlie", "Charlie", "Grind", "password123", "", false},
		{"diana@test.com", "diana", "Diana", "Manual", "password123", "Asia/Tokyo", false},
	}

	var roles []models.Role
	if err := db.Find(&roles).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load roles: %w", err)
	}
	roleIDs := make(map[string]int, len(roles))
	for _, r := range roles {
		roleIDs[r.SystemName] = r.ID
	}

	users := make([]models.User, 0, len(testUsers))
	admins := make(map[string]bool)
	for _, data := range testUsers {
		var existing models.User
		if err := db.Where("email = ? OR username = ?", data.email, data.username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", data.username)
			users = append(users, existing)
			admins[existing.ID] = data.admin
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to hash password: %w", err)
		}

		user := models.User{
			FirstName: data.firstName,
			LastName:  data.lastName,
			Name:      data.firstName + " " + data.lastName,
			Email:     data.email,
			Username:  data.username,
			Password:  string(hashedPassword),
			Active:    true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Error("Failed to create user %s: %v", data.username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		users = append(users, user)
		admins[user.ID] = data.admin

		systemNames := []string{models.RoleSystemNameRegistered}
		if data.admin {
			systemNames = append(systemNames, models.RoleSystemNameAdministrators)
		}
		for _, name := range systemNames {
			roleID, ok := roleIDs[name]
			if !ok {
				log.Warn("Role %s is not installed, skipping", name)
				continue
			}
			db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.UserRole{UserID: user.ID, RoleID: roleID})
		}

		if data.timeZone != "" {
			db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.EntityProperty{
				EntityID:     user.ID,
				EntityName:   entity.EntityNameUser,
				PropertyName: entity.PropertyTimeZoneID,
				Value:        data.timeZone,
			})
		}

		db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Permalink{
			EntityName: entity.EntityNameUser,
			EntityID:   user.ID,
			Slug:       data.username,
			Active:     true,
		})
	}

	if len(users) < 4 {
		log.Warn("Only %d users available, skipping relations", len(users))
		return users, admins, nil
	}
	alice, bob, charlie, diana := users[0], users[1], users[2], users[3]
	now := time.Now().UTC()

	friends := []models.UserFriend{
		{FromUserID: alice.ID, ToUserID: bob.ID, Confirmed: true, DateRequested: now.Add(-48 * time.Hour), DateConfirmed: &now},
		{FromUserID: charlie.ID, ToUserID: alice.ID, DateRequested: now.Add(-time.Hour)},
		{FromUserID: diana.ID, ToUserID: bob.ID, Confirmed: true, DateRequested: now.Add(-72 * time.Hour), DateConfirmed: &now},
	}
	for i := range friends {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&friends[i]).Error; err != nil {
			log.Error("Failed to create friendship: %v", err)
		}
	}
	log.Info("Created test friendships")

	follows := []models.UserFollow{
		{FollowerID: bob.ID, TargetType: models.TargetTypeUser, TargetID: alice.ID},
		{FollowerID: charlie.ID, TargetType: models.TargetTypeUser, TargetID: alice.ID},
		{FollowerID: diana.ID, TargetType: models.TargetTypeUser, TargetID: alice.ID},
		{FollowerID: alice.ID, TargetType: models.TargetTypeUser, TargetID: diana.ID},
	}
	for i := range follows {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follows[i]).Error; err != nil {
			log.Error("Failed to create follow: %v", err)
		}
	}
	log.Info("Created test follows")

	var events []models.NotificationEvent
	if err := db.Find(&events).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load notification events: %w", err)
	}
	eventIDs := make(map[string]int, len(events))
	for _, e := range events {
		eventIDs[e.EventName] = e.ID
	}

	notifications := []struct {
		event     string
		initiator string
		at        time.Time
	}{
		{queue.TaskNewFollower, bob.ID, now.Add(-3 * time.Hour)},
		{queue.TaskNewFollower, charlie.ID, now.Add(-2 * time.Hour)},
		{queue.TaskFriendRequest, charlie.ID, now.Add(-time.Hour)},
		// Scheduled, hidden until it is published.
		{queue.TaskNewFollower, diana.ID, now.Add(24 * time.Hour)},
	}
	for _, n := range notifications {
		eventID, ok := eventIDs[n.event]
		if !ok {
			log.Warn("Notification event %s is not installed, skipping", n.event)
			continue
		}
		row := models.Notification{
			UserID:              alice.ID,
			NotificationEventID: eventID,
			InitiatorID:         n.initiator,
			EntityName:          entity.EntityNameUser,
			EntityID:            n.initiator,
			PublishDateTime:     n.at,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Error("Failed to create notification: %v", err)
		}
	}
	log.Info("Created test notifications")

	moves := []string{"Ollie", "Kickflip", "Heelflip", "Boardslide", "Manual"}
	for i, name := range moves {
		move := models.SkateMove{Name: name, SortOrder: i}
		if err := db.Where(models.SkateMove{Name: name}).FirstOrCreate(&move).Error; err != nil {
			log.Error("Failed to create skate move %s: %v", name, err)
			continue
		}
		if i < 3 {
			db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.UserSkateMove{UserID: alice.ID, SkateMoveID: move.ID})
		}
	}
	log.Info("Created test skate moves")

	return users, admins, nil
}
