package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// lista es el envelope de listados del backend. El devserver no pagina:
// proxima/anterior siempre null.
type lista struct {
	Total      int     `json:"total"`
	Proxima    *string `json:"proxima"`
	Anterior   *string `json:"anterior"`
	Resultados any     `json:"resultados"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeLista(w http.ResponseWriter, total int, resultados any) {
	writeJSON(w, http.StatusOK, lista{Total: total, Resultados: resultados})
}

func writeMensagem(w http.ResponseWriter, status int, mensagem string) {
	writeJSON(w, status, map[string]string{"mensagem": mensagem})
}

// writeCampos devuelve un error de validación campo→mensaje, como lo
// arma el backend real.
func writeCampos(w http.ResponseWriter, status int, campos map[string]string) {
	writeJSON(w, status, campos)
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// urlID parsea el {id} de la ruta; 0 si no es numérico.
func urlID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// queryID parsea un parámetro numérico del query string; 0 si falta.
func queryID(r *http.Request, nome string) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get(nome), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
