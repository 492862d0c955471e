package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"splint-factory-backend/internal/config"
	"splint-factory-backend/internal/database"
	"splint-factory-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserData struct {
	OrganizationName string `yaml:"organization_name,omitempty"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Email            string `yaml:"email"`
	Password         string `yaml:"password"`
	Role             string `yaml:"role"`
}

type ParameterData struct {
	Name      string      `yaml:"name"`
	Label     string      `yaml:"label,omitempty"`
	Type      string      `yaml:"type"`
	Required  bool        `yaml:"required,omitempty"`
	Min       *float64    `yaml:"min,omitempty"`
	Max       *float64    `yaml:"max,omitempty"`
	MinLength *int        `yaml:"min_length,omitempty"`
	MaxLength *int        `yaml:"max_length,omitempty"`
	Default   interface{} `yaml:"default,omitempty"`
}

type GeometryData struct {
	Name        string          `yaml:"name"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Version     int             `yaml:"version"`
	Parameters  []ParameterData `yaml:"parameters"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type GeometriesFile struct {
	Geometries []GeometryData `yaml:"geometries"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	geometries, err := loadGeometries(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load geometries: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create geometry templates
	geometryCreated := 0
	for _, geometryData := range geometries {
		_, created, err := createGeometry(db, geometryData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create geometry %s: %v", geometryData.Name, err)
			continue // Continue with other geometries
		}
		if created {
			geometryCreated++
		}
	}
	log.Printf("📋 Geometry templates: %d created, %d total", geometryCreated, len(geometries))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadGeometries(dataDir string) ([]GeometryData, error) {
	var allGeometries []GeometryData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "geometries") {
			var file GeometriesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGeometries = append(allGeometries, file.Geometries...)
		}
		return nil
	})

	return allGeometries, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				Description: orgData.Description,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, orgMap map[string]*models.Organization) (*models.User, bool, error) {
	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q for user %s", userData.Role, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Email:        userData.Email,
				PasswordHash: string(hash),
				Role:         role,
			}
			if userData.OrganizationName != "" {
				org := orgMap[userData.OrganizationName]
				if org == nil {
					return nil, false, fmt.Errorf("organization %s not found for user %s", userData.OrganizationName, userData.Email)
				}
				user.OrganizationID = &org.ID
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createGeometry(db *gorm.DB, geometryData GeometryData) (*models.NamedGeometry, bool, error) {
	var geometry models.NamedGeometry
	if err := db.Where("name = ?", geometryData.Name).First(&geometry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			defs := make([]models.ParameterDefinition, 0, len(geometryData.Parameters))
			for _, p := range geometryData.Parameters {
				defs = append(defs, models.ParameterDefinition{
					Name:      p.Name,
					Label:     p.Label,
					Type:      models.ParameterType(p.Type),
					Required:  p.Required,
					Min:       p.Min,
					Max:       p.Max,
					MinLength: p.MinLength,
					MaxLength: p.MaxLength,
					Default:   p.Default,
				})
			}
			schemaJSON, err := json.Marshal(defs)
			if err != nil {
				return nil, false, fmt.Errorf("failed to marshal parameter schema: %w", err)
			}

			version := geometryData.Version
			if version == 0 {
				version = 1
			}
			geometry = models.NamedGeometry{
				Name:            geometryData.Name,
				Title:           geometryData.Title,
				Description:     geometryData.Description,
				Version:         version,
				ParameterSchema: schemaJSON,
			}

			if err := db.Create(&geometry).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create geometry: %w", err)
			}
			return &geometry, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query geometry: %w", err)
		}
	}

	return &geometry, false, nil // created = false (existing)
}
