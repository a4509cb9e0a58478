package main

import (
	"context"
	"flag"
	"log"
	"os"

	"fieldbooking/internal/config"
	"fieldbooking/internal/database"
	"fieldbooking/internal/domain"
	"fieldbooking/internal/modules/auth"
	"fieldbooking/internal/pkg/validator"
	"fieldbooking/internal/repository"
)

type staffInput struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required,user_role"`
}

// Creates or updates a staff account. Existing accounts are matched by email.
//
//	go run ./cmd/seed -username manager1 -email manager@field.vn -password secret -role manager
func main() {
	var in staffInput
	flag.StringVar(&in.Username, "username", "", "staff username")
	flag.StringVar(&in.Email, "email", "", "login email")
	flag.StringVar(&in.Password, "password", "", "plain password, hashed with bcrypt before storing")
	flag.StringVar(&in.Role, "role", string(domain.RoleManager), "admin, manager or owner")
	flag.Parse()

	if errs := validator.Validate(in); errs != nil {
		for field, tag := range errs {
			log.Printf("invalid %s: failed %s", field, tag)
		}
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	user, err := auth.NewStaffUser(in.Username, in.Email, in.Password, domain.UserRole(in.Role))
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.NewUserRepository(db).Upsert(ctx, user); err != nil {
		log.Fatal("save user failed:", err)
	}

	log.Printf("staff user saved id=%d email=%s role=%s", user.ID, user.Email, user.Role)
}
