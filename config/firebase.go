package config

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// FirebaseApp is a global variable for the Firebase app instance
var FirebaseApp *firebase.App

// InitializeFirebase initializes the Firebase app used for push notifications.
func InitializeFirebase() {
	credentials := os.Getenv("FIREBASE_CREDENTIALS")
	if credentials == "" {
		credentials = "config/service-account.json"
	}

	opt := option.WithCredentialsFile(credentials)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	FirebaseApp = app
	log.Println("Firebase initialized successfully!")
}
