package devserver_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"sarc-client/internal/adapters/storage/memory"
	"sarc-client/internal/api"
	"sarc-client/internal/devserver"
	"sarc-client/internal/domain/amizades"
	"sarc-client/internal/domain/eventos"
	"sarc-client/internal/domain/lugares"
	"sarc-client/internal/domain/usuarios"
	"sarc-client/internal/platform/httpclient"
	"sarc-client/internal/ports/credentials"
	"sarc-client/internal/session"
)

// cliente arma el stack completo de un usuario del app: store de
// credenciales, sesión contra /auth y transporte autenticado para /v1.
type cliente struct {
	sess *session.Sessao
	api  *httpclient.Client
}

func newCliente(t *testing.T, baseURL string) *cliente {
	t.Helper()

	store := memory.NewCredentialStore()

	authClient, err := httpclient.New(httpclient.Config{BaseURL: baseURL + "/auth"})
	if err != nil {
		t.Fatalf("auth client: %v", err)
	}
	sess, err := session.New(session.Config{Service: authClient, Store: store})
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	apiClient, err := httpclient.New(httpclient.Config{
		BaseURL: baseURL,
		Tokens:  credentials.TokenSource(store),
	})
	if err != nil {
		t.Fatalf("api client: %v", err)
	}

	return &cliente{sess: sess, api: apiClient}
}

func cadastrar(t *testing.T, c *cliente, username, nome, email, senha string) int64 {
	t.Helper()

	token, err := c.sess.Cadastro(context.Background(), username, nome, "Teste", email, senha)
	if err != nil {
		t.Fatalf("cadastro %s: %v", username, err)
	}
	claims, err := session.ParseClaims(token)
	if err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	if claims.UserID == 0 {
		t.Fatalf("cadastro %s: claims sin user id", username)
	}
	return claims.UserID
}

func TestDevServer_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(devserver.New(devserver.Options{}))
	defer ts.Close()

	ctx := context.Background()

	ana := newCliente(t, ts.URL)
	bia := newCliente(t, ts.URL)

	// 1) Registro encadena login: el token trae los claims del usuario
	anaID := cadastrar(t, ana, "ana", "Ana", "ana@sarc.app", "senha-ana")
	biaID := cadastrar(t, bia, "bia", "Bia", "bia@sarc.app", "senha-bia")

	// 2) Validación de registro: email tomado vs libre
	if !ana.sess.ValidarCadastroEmail(ctx, "ana@sarc.app", "") {
		t.Fatal("email registrado debería reportarse tomado")
	}
	if ana.sess.ValidarCadastroEmail(ctx, "nadie@sarc.app", "") {
		t.Fatal("email libre no debería reportarse tomado")
	}
	if !ana.sess.ValidarCadastroUsername(ctx, "bia", "") {
		t.Fatal("username registrado debería reportarse tomado")
	}

	// 3) Sembrar un lugar vía el recurso genérico
	lugaresRec := api.NewResource(ana.api, "lugares")
	reg, err := lugaresRec.Create(ctx, map[string]any{
		"nome":      "Bar do Centro",
		"descricao": "bar",
		"gratuito":  true,
		"categoria": map[string]any{"id": 1, "nome": "Bar"},
	}, nil)
	if err != nil {
		t.Fatalf("create lugar: %v", err)
	}
	var lugar lugares.Lugar
	if err := reg.Decode(&lugar); err != nil {
		t.Fatalf("decode lugar: %v", err)
	}
	if lugar.ID == 0 || !lugar.Ativo {
		t.Fatalf("lugar creado inválido: %+v", lugar)
	}

	// 4) Listado tipado con filtro de búsqueda
	lugaresSvc := lugares.NewService(ana.api)
	found, err := lugaresSvc.List(ctx, lugares.ListFilters{Busca: "centro"})
	if err != nil {
		t.Fatalf("list lugares: %v", err)
	}
	if len(found) != 1 || found[0].ID != lugar.ID {
		t.Fatalf("busca=centro: expected 1 match, got %d", len(found))
	}
	if vacio, err := lugaresSvc.List(ctx, lugares.ListFilters{Busca: "montanha"}); err != nil || len(vacio) != 0 {
		t.Fatalf("busca sin match: got %d items, err=%v", len(vacio), err)
	}

	// 5) Categorías y reseñas
	cats, err := lugaresSvc.Categorias(ctx)
	if err != nil || len(cats) == 0 {
		t.Fatalf("categorias: %d, err=%v", len(cats), err)
	}
	if _, err := lugaresSvc.Avaliar(ctx, lugares.AvaliacaoLugar{
		Lugar: lugar.ID, Nota: 5, Resenha: "excelente",
	}); err != nil {
		t.Fatalf("avaliar: %v", err)
	}
	avals, err := lugaresSvc.Avaliacoes(ctx, lugar.ID)
	if err != nil || len(avals) != 1 {
		t.Fatalf("avaliacoes: %d, err=%v", len(avals), err)
	}
	if avals[0].Usuario != anaID {
		t.Fatalf("avaliacao debería atribuirse al autenticado, got %d", avals[0].Usuario)
	}

	// 6) Crear evento inscribe al creador
	eventosSvc := eventos.NewService(ana.api)
	ev, err := eventosSvc.Create(ctx, eventos.CreateInput{
		Nome:  "Happy hour",
		Lugar: lugar.ID,
		Data:  "2026-09-12",
	})
	if err != nil {
		t.Fatalf("create evento: %v", err)
	}
	if ev.Lugar.ID != lugar.ID {
		t.Fatalf("evento debería embeber el lugar, got %+v", ev.Lugar)
	}
	insc, err := eventosSvc.Inscricoes(ctx, anaID)
	if err != nil || len(insc) != 1 {
		t.Fatalf("inscricoes creador: %d, err=%v", len(insc), err)
	}
	if !insc[0].CriadorEvento {
		t.Fatal("la inscripción del creador debería marcar criador_evento")
	}

	// 7) Convidar inscribe al invitado
	if err := eventosSvc.Convidar(ctx, ev.ID, biaID); err != nil {
		t.Fatalf("convidar: %v", err)
	}
	inscBia, err := eventos.NewService(bia.api).Inscricoes(ctx, biaID)
	if err != nil || len(inscBia) != 1 {
		t.Fatalf("inscricoes invitado: %d, err=%v", len(inscBia), err)
	}
	if inscBia[0].CriadorEvento {
		t.Fatal("el invitado no es criador del evento")
	}

	// 8) Pedido de amistad: contador y aceptación
	amizadesAna := amizades.NewService(ana.api)
	pedido, err := amizadesAna.Convidar(ctx, anaID, biaID)
	if err != nil {
		t.Fatalf("convidar amizade: %v", err)
	}
	if pedido.Ativo {
		t.Fatal("el pedido recién creado debería estar pendiente")
	}

	usuariosBia := usuarios.NewService(bia.api)
	total, err := usuariosBia.TotalPedidosAmizade(ctx)
	if err != nil || total != 1 {
		t.Fatalf("total pedidos: %d, err=%v", total, err)
	}

	amizadesBia := amizades.NewService(bia.api)
	pendentes, err := amizadesBia.List(ctx, biaID, true)
	if err != nil || len(pendentes) != 1 {
		t.Fatalf("pendientes: %d, err=%v", len(pendentes), err)
	}
	if err := amizadesBia.Aceitar(ctx, pendentes[0].ID); err != nil {
		t.Fatalf("aceitar: %v", err)
	}

	amigos, err := amizadesAna.List(ctx, anaID, false)
	if err != nil || len(amigos) != 1 || !amigos[0].Ativo {
		t.Fatalf("amistad aceptada: %+v, err=%v", amigos, err)
	}
	if total, _ := usuariosBia.TotalPedidosAmizade(ctx); total != 0 {
		t.Fatalf("contador debería volver a 0, got %d", total)
	}

	// 9) Perfil: retrieve, búsqueda por email y update parcial
	perfil, err := usuariosBia.Retrieve(ctx, anaID)
	if err != nil || perfil.Username != "ana" {
		t.Fatalf("retrieve usuario: %+v, err=%v", perfil, err)
	}
	porEmail, found2, err := usuariosBia.RetrieveByEmail(ctx, "bia@sarc.app")
	if err != nil || !found2 || porEmail.ID != biaID {
		t.Fatalf("retrieve by email: %+v found=%v err=%v", porEmail, found2, err)
	}
	editado, err := usuariosBia.Update(ctx, biaID, map[string]any{"cellphone": "99999-0000"})
	if err != nil || editado.Celular != "99999-0000" {
		t.Fatalf("update perfil: %+v, err=%v", editado, err)
	}

	// 10) Delete apunta a la raíz de la colección y vuelve como valor
	if err := api.NewResource(ana.api, "eventos").Delete(ctx, nil); err == nil {
		t.Fatal("delete sobre la colección debería fallar")
	} else {
		var apiErr *api.Erro
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *api.Erro, got %T", err)
		}
		if apiErr.Status != 405 {
			t.Fatalf("expected 405, got %d", apiErr.Status)
		}
	}

	// 11) Logout corta el acceso autenticado
	if err := bia.sess.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, err = usuariosBia.TotalPedidosAmizade(ctx)
	if st, ok := api.Status(err); !ok || st != 401 {
		t.Fatalf("expected 401 after logout, got %v", err)
	}
}

func TestDevServer_Login_Rechazado(t *testing.T) {
	ts := httptest.NewServer(devserver.New(devserver.Options{}))
	defer ts.Close()

	ctx := context.Background()
	c := newCliente(t, ts.URL)
	cadastrar(t, c, "caro", "Caro", "caro@sarc.app", "senha-ok")

	_, err := c.sess.Login(ctx, "caro@sarc.app", "senha-mala")
	if st, ok := api.Status(err); !ok || st != 401 {
		t.Fatalf("expected 401 rechazo, got %v", err)
	}

	if _, err := c.sess.Login(ctx, "caro@sarc.app", "senha-ok"); err != nil {
		t.Fatalf("login válido: %v", err)
	}
}

func TestDevServer_Cadastro_EmailDuplicado(t *testing.T) {
	ts := httptest.NewServer(devserver.New(devserver.Options{}))
	defer ts.Close()

	ctx := context.Background()
	c := newCliente(t, ts.URL)
	cadastrar(t, c, "dani", "Dani", "dani@sarc.app", "senha")

	_, err := c.sess.Cadastro(ctx, "dani2", "Dani", "Dos", "dani@sarc.app", "senha")
	var apiErr *api.Erro
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Erro, got %v", err)
	}
	if _, ok := apiErr.Campos["email"]; !ok {
		t.Fatalf("expected field error on email, got %+v", apiErr.Campos)
	}
}

func TestDevServer_RedefinicaoSenha(t *testing.T) {
	ts := httptest.NewServer(devserver.New(devserver.Options{}))
	defer ts.Close()

	ctx := context.Background()
	c := newCliente(t, ts.URL)
	cadastrar(t, c, "eli", "Eli", "eli@sarc.app", "senha-vieja")

	if err := c.sess.EnviarEmailRedefinicaoSenha(ctx, "eli@sarc.app"); err != nil {
		t.Fatalf("enviar email: %v", err)
	}

	// Código equivocado vs código fijo de dev
	if conf := c.sess.ConfirmarCodigoRedefinicaoSenha(ctx, "eli@sarc.app", "000000"); conf.OK {
		t.Fatal("código equivocado no debería confirmar")
	} else if conf.Reason != session.ReasonInvalidCode {
		t.Fatalf("expected invalid_code, got %q", conf.Reason)
	}
	if conf := c.sess.ConfirmarCodigoRedefinicaoSenha(ctx, "eli@sarc.app", "123456"); !conf.OK {
		t.Fatalf("código correcto rechazado: %+v", conf)
	}

	// Redefinir encadena login con la senha nueva
	if _, err := c.sess.RedefinirSenha(ctx, "eli@sarc.app", "senha-nueva"); err != nil {
		t.Fatalf("redefinir: %v", err)
	}
	if _, err := c.sess.Login(ctx, "eli@sarc.app", "senha-vieja"); err == nil {
		t.Fatal("la senha vieja no debería servir más")
	}

	// TrocarSenha exige la actual
	if err := c.sess.TrocarSenha(ctx, "eli@sarc.app", "senha-mala", "otra"); err == nil {
		t.Fatal("trocar con senha actual incorrecta debería fallar")
	}
	if err := c.sess.TrocarSenha(ctx, "eli@sarc.app", "senha-nueva", "senha-final"); err != nil {
		t.Fatalf("trocar senha: %v", err)
	}
	if _, err := c.sess.Login(ctx, "eli@sarc.app", "senha-final"); err != nil {
		t.Fatalf("login con senha final: %v", err)
	}
}

func TestDevServer_SinAuth(t *testing.T) {
	ts := httptest.NewServer(devserver.New(devserver.Options{}))
	defer ts.Close()

	ctx := context.Background()
	c := newCliente(t, ts.URL)

	// Lecturas públicas funcionan sin token
	if _, err := lugares.NewService(c.api).List(ctx, lugares.ListFilters{}); err != nil {
		t.Fatalf("list lugares sin auth: %v", err)
	}

	// Escrituras exigen sesión
	_, err := eventos.NewService(c.api).Create(ctx, eventos.CreateInput{Nome: "x", Lugar: 1})
	if st, ok := api.Status(err); !ok || st != 401 {
		t.Fatalf("expected 401 sin auth, got %v", err)
	}
}
