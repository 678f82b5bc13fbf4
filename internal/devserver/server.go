// Package devserver es un stand-in local del backend SARC: expone los
// endpoints de auth y las colecciones v1 con los mismos shapes de wire,
// para ejercitar el cliente sin red ni backend real.
package devserver

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"sync"

	mem "sarc-client/internal/adapters/storage/memory"
	pg "sarc-client/internal/adapters/storage/postgres"
	"sarc-client/internal/domain/amizades"
	"sarc-client/internal/domain/eventos"
	"sarc-client/internal/domain/lugares"
	"sarc-client/internal/domain/postagens"
	"sarc-client/internal/domain/usuarios"
	"sarc-client/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Código de reset fijo: el devserver no manda mails.
const devResetCode = "123456"

type Options struct {
	// Opcional: si viene, usuarios y lugares van a Postgres. Si no, in-memory.
	DB *sql.DB

	// Secreto HS256 para emitir y verificar tokens. Default dev.
	Secret string

	Logger logger.Logger
}

type server struct {
	usuarios  usuarios.Repository
	lugares   lugares.Repository
	eventos   eventos.Repository
	amizades  amizades.Repository
	postagens postagens.Repository

	secret []byte
	log    logger.Logger

	// Colecciones satélite de lugares; viven acá porque el stub no las
	// persiste fuera del proceso.
	mu         sync.Mutex
	seqAval    int64
	avaliacoes []lugares.AvaliacaoLugar
	categorias []lugares.CategoriaLugar
}

func New(opts Options) http.Handler {
	s := &server{
		secret: []byte(opts.Secret),
		log:    opts.Logger,
	}
	if len(s.secret) == 0 {
		if env := strings.TrimSpace(os.Getenv("JWT_SECRET")); env != "" {
			s.secret = []byte(env)
		} else {
			s.secret = []byte("sarc-dev-secret")
		}
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		s.usuarios = pg.NewUsuariosRepo(db)
		s.lugares = pg.NewLugaresRepo(db)
	} else {
		s.usuarios = mem.NewUsuariosRepo()
		s.lugares = mem.NewLugaresRepo()
	}
	// El resto de las colecciones del stub es in-memory siempre.
	s.eventos = mem.NewEventosRepo()
	s.amizades = mem.NewAmizadesRepo()
	s.postagens = mem.NewPostagensRepo()

	s.categorias = []lugares.CategoriaLugar{
		{ID: 1, Nome: "Bar"},
		{ID: 2, Nome: "Restaurante"},
		{ID: 3, Nome: "Parque"},
		{ID: 4, Nome: "Museu"},
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(s.authContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/token/obtain/", s.tokenObtainHandler)
		ar.Post("/cadastro/", s.cadastroHandler)
		ar.Get("/validar_cadastro_email/", s.validarEmailHandler)
		ar.Get("/validar_cadastro_username/", s.validarUsernameHandler)
		ar.Post("/enviar_email_redefinicao_senha/", s.enviarEmailResetHandler)
		ar.Post("/confirmar_codigo_redefinir_senha/", s.confirmarCodigoHandler)
		ar.Post("/redefinir_senha/", s.redefinirSenhaHandler)
		ar.Post("/trocar_senha/", s.trocarSenhaHandler)
	})

	r.Route("/v1", func(vr chi.Router) {
		vr.Route("/usuarios", func(ur chi.Router) {
			ur.Get("/", s.listUsuariosHandler)
			ur.Put("/", s.collectionPutHandler)
			ur.Get("/total_pedidos_amizade/", s.totalPedidosAmizadeHandler)
			ur.Get("/{id}/", s.getUsuarioHandler)
			ur.Patch("/{id}/", s.updateUsuarioHandler)
		})

		vr.Route("/lugares", func(lr chi.Router) {
			lr.Get("/", s.listLugaresHandler)
			lr.Post("/", s.createLugarHandler)
			lr.Put("/", s.collectionPutHandler)
			lr.Get("/{id}/", s.getLugarHandler)
		})

		vr.Route("/categorias_lugar", func(cr chi.Router) {
			cr.Get("/", s.listCategoriasHandler)
			cr.Put("/", s.collectionPutHandler)
		})

		vr.Route("/avaliacoes_lugar", func(avr chi.Router) {
			avr.Get("/", s.listAvaliacoesHandler)
			avr.Post("/", s.createAvaliacaoHandler)
			avr.Put("/", s.collectionPutHandler)
		})

		vr.Route("/eventos", func(er chi.Router) {
			er.Get("/", s.listEventosHandler)
			er.Post("/", s.createEventoHandler)
			er.Put("/", s.collectionPutHandler)
			er.Get("/{id}/", s.getEventoHandler)
		})

		vr.Route("/inscricoes_evento", func(ir chi.Router) {
			ir.Get("/", s.listInscricoesHandler)
			ir.Post("/", s.createInscricaoHandler)
			ir.Post("/convidar/", s.convidarEventoHandler)
			ir.Put("/", s.collectionPutHandler)
		})

		vr.Route("/amizades_usuarios", func(amr chi.Router) {
			amr.Get("/", s.listAmizadesHandler)
			amr.Post("/", s.createAmizadeHandler)
			amr.Put("/", s.collectionPutHandler)
			amr.Put("/{id}/aceitar/", s.aceitarAmizadeHandler)
			amr.Put("/{id}/recusar/", s.recusarAmizadeHandler)
		})

		vr.Route("/postagens", func(pr chi.Router) {
			pr.Get("/", s.listPostagensHandler)
			pr.Post("/", s.createPostagemHandler)
			pr.Put("/", s.collectionPutHandler)
			pr.Get("/{id}/", s.getPostagemHandler)
		})
	})

	return r
}

// collectionPutHandler responde al PUT sobre la raíz de una colección,
// que el backend real no soporta (el cliente lo manda igual en Delete).
func (s *server) collectionPutHandler(w http.ResponseWriter, _ *http.Request) {
	writeMensagem(w, http.StatusMethodNotAllowed, `Método "PUT" não permitido.`)
}
