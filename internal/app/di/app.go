// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "portfolio_backend/internal/feature/auth/adapters"
	authentity "portfolio_backend/internal/feature/auth/domain/entity"
	authhandler "portfolio_backend/internal/feature/auth/transport/handler"
	authusecase "portfolio_backend/internal/feature/auth/usecase"
	blogadapters "portfolio_backend/internal/feature/blog/adapters"
	blogentity "portfolio_backend/internal/feature/blog/domain/entity"
	bloghandler "portfolio_backend/internal/feature/blog/transport/handler"
	blogusecase "portfolio_backend/internal/feature/blog/usecase"
	contactadapters "portfolio_backend/internal/feature/contact/adapters"
	contactentity "portfolio_backend/internal/feature/contact/domain/entity"
	contacthandler "portfolio_backend/internal/feature/contact/transport/handler"
	contactusecase "portfolio_backend/internal/feature/contact/usecase"
	portfolioadapters "portfolio_backend/internal/feature/portfolio/adapters"
	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "portfolio_backend/internal/feature/portfolio/usecase"
	servicesadapters "portfolio_backend/internal/feature/services/adapters"
	servicesentity "portfolio_backend/internal/feature/services/domain/entity"
	serviceshandler "portfolio_backend/internal/feature/services/transport/handler"
	servicesusecase "portfolio_backend/internal/feature/services/usecase"
	testimonialsadapters "portfolio_backend/internal/feature/testimonials/adapters"
	testimonialsentity "portfolio_backend/internal/feature/testimonials/domain/entity"
	testimonialshandler "portfolio_backend/internal/feature/testimonials/transport/handler"
	testimonialsusecase "portfolio_backend/internal/feature/testimonials/usecase"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// Models lists every entity the schema is migrated for.
func Models() []any {
	return []any{
		&authentity.User{},
		&portfolioentity.Project{},
		&testimonialsentity.Testimonial{},
		&servicesentity.Service{},
		&blogentity.Post{},
		&contactentity.ContactRequest{},
	}
}

// Handlers bundles the HTTP handlers and the authentication gate the router mounts.
type Handlers struct {
	Auth         *authhandler.AuthHandler
	Projects     *portfoliohandler.ProjectHandler
	Testimonials *testimonialshandler.TestimonialHandler
	Services     *serviceshandler.ServiceHandler
	Blog         *bloghandler.PostHandler
	Contact      *contacthandler.ContactHandler
	Gate         *jwtmw.Gate
}

// NewHandlers wires repositories, usecases and handlers over db.
// rdb may be nil, in which case contact notifications only go to the log.
func NewHandlers(db *gorm.DB, rdb *redis.Client, tokens *jwtmw.TokenService) *Handlers {
	// Repository
	userRepo := authadapters.NewUserRepository(db)
	projectRepo := portfolioadapters.NewProjectRepository(db)
	testimonialRepo := testimonialsadapters.NewTestimonialRepository(db)
	serviceRepo := servicesadapters.NewServiceRepository(db)
	postRepo := blogadapters.NewPostRepository(db)
	contactRepo := contactadapters.NewContactRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	projectUC := portfoliousecase.NewProjectUsecase(projectRepo)
	testimonialUC := testimonialsusecase.NewTestimonialUsecase(testimonialRepo)
	serviceUC := servicesusecase.NewServiceUsecase(serviceRepo)
	postUC := blogusecase.NewPostUsecase(postRepo)
	contactUC := contactusecase.NewContactUsecase(contactRepo, NewContactNotifier(rdb))

	// Handler
	return &Handlers{
		Auth:         authhandler.NewAuthHandler(authUC),
		Projects:     portfoliohandler.NewProjectHandler(projectUC),
		Testimonials: testimonialshandler.NewTestimonialHandler(testimonialUC),
		Services:     serviceshandler.NewServiceHandler(serviceUC),
		Blog:         bloghandler.NewPostHandler(postUC),
		Contact:      contacthandler.NewContactHandler(contactUC),
		Gate:         jwtmw.NewGate(tokens, authUC),
	}
}
