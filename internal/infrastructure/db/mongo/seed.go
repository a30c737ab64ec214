package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ofimatica/catalog-system/internal/core/domain"
)

// Seed populates an empty database with a starter admin/demo account pair
// and a small catalog, so a fresh deployment is browsable right away.
// Collections that already hold documents are left untouched.
func Seed(ctx context.Context, db *mongo.Database, adminPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	accounts := db.Collection(collectionAccounts)
	n, err := accounts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count accounts: %w", err)
	}
	if n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		docs := []interface{}{
			accountDoc{
				Name: "Super", Surname: "Admin",
				Username: "admin", Email: "admin@ofimatica.com",
				PasswordHash: string(hash), Role: domain.RoleAdmin, Active: true,
			},
			accountDoc{
				Name: "Demo", Surname: "User",
				Username: "user", Email: "user@ofimatica.com",
				PasswordHash: string(hash), Role: domain.RoleUser, Active: true,
			},
		}
		if _, err := accounts.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed: insert accounts: %w", err)
		}
	}

	resources := db.Collection(collectionResources)
	n, err = resources.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count resources: %w", err)
	}
	if n == 0 {
		catalog := []interface{}{
			resourceDoc{Type: "book", Name: "Cien Años de Soledad", Author: "Gabriel Garcia Marquez", Description: "Classic novel of magical realism.", Publication: 1967},
			resourceDoc{Type: "book", Name: "Don Quijote de la Mancha", Author: "Miguel de Cervantes", Description: "Masterpiece of Spanish literature.", Publication: 1605},
			resourceDoc{Type: "book", Name: "El Señor de los Anillos", Author: "J. R. R. Tolkien", Description: "Epic fantasy set in Middle-earth.", Publication: 1954},
			resourceDoc{Type: "movie", Name: "El Padrino", Author: "Francis Ford Coppola", Description: "Classic of mafia cinema.", Publication: 1972},
			resourceDoc{Type: "movie", Name: "La Lista de Schindler", Author: "Steven Spielberg", Description: "Historical drama about the Holocaust.", Publication: 1993},
			resourceDoc{Type: "movie", Name: "Inception", Author: "Christopher Nolan", Description: "Science fiction about dreams within dreams.", Publication: 2010},
			resourceDoc{Type: "music", Name: "Thriller", Author: "Michael Jackson", Description: "Best-selling album of all time.", Publication: 1982},
			resourceDoc{Type: "music", Name: "Bohemian Rhapsody", Author: "Queen", Description: "Iconic progressive rock song.", Publication: 1975},
			resourceDoc{Type: "music", Name: "Imagine", Author: "John Lennon", Description: "Pacifist anthem of the seventies.", Publication: 1971},
		}
		if _, err := resources.InsertMany(ctx, catalog); err != nil {
			return fmt.Errorf("seed: insert resources: %w", err)
		}
	}

	return nil
}
