package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/see-paw/backend-sub005/internal/config"
	"github.com/see-paw/backend-sub005/internal/domain"
	"github.com/see-paw/backend-sub005/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
			r.Get("/reservations", h.GetMyReservations)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/shelters", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateShelter)
			r.Get("/", h.GetAllShelters)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shelterInfo)
				r.Get("/", h.GetShelter)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Patch("/", h.UpdateShelter)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteShelter)
				r.Route("/unavailabilities", func(r chi.Router) {
					r.Get("/", h.GetShelterUnavailabilities)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Post("/", h.CreateShelterUnavailability)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Delete("/{slotID}", h.DeleteShelterUnavailability)
				})
			})
		})

		r.Route("/animals", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Post("/", h.CreateAnimal)
			r.Get("/", h.GetAllAnimals)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.animalInfo)
				r.Get("/", h.GetAnimal)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Patch("/", h.UpdateAnimal)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleStaff})).Delete("/", h.DeleteAnimal)
				// 周日程：整理时段 → 计算空闲区间 → 组装 7 天日程
				r.Get("/schedule", h.GetAnimalWeeklySchedule)
				r.With(h.myInfo).With(h.preventInactiveUser).Post("/reservations", h.CreateReservation)
			})
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.reservationInfo)
				r.With(h.myInfo).Delete("/", h.CancelReservation)
			})
		})
	})
}
