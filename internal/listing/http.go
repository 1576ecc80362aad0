package listing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casaflow/casaflow/internal/httpx"
)

// RegisterRoutes exposes read endpoints for published listings.
func RegisterRoutes(router chi.Router, repo *Repository) {
	router.Route("/properties", func(r chi.Router) {
		r.Get("/", listPropertiesHandler(repo))
		r.Get("/{id}", getPropertyHandler(repo))
	})
	router.Route("/lands", func(r chi.Router) {
		r.Get("/", listLandsHandler(repo))
		r.Get("/{id}", getLandHandler(repo))
	})
	router.Route("/blog", func(r chi.Router) {
		r.Get("/", listBlogPostsHandler(repo))
		r.Get("/{id}", getBlogPostHandler(repo))
	})
}

func listPropertiesHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := repo.ListProperties(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]map[string]any, 0, len(entities))
		for _, entity := range entities {
			items = append(items, entity.ToDTO())
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

func getPropertyHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := repo.FindProperty(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if IsNotFound(err) {
				httpx.Error(w, http.StatusNotFound, "property not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": entity.ToDTO()})
	}
}

func listLandsHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := repo.ListLands(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]map[string]any, 0, len(entities))
		for _, entity := range entities {
			items = append(items, entity.ToDTO())
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

func getLandHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := repo.FindLand(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if IsNotFound(err) {
				httpx.Error(w, http.StatusNotFound, "land not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": entity.ToDTO()})
	}
}

func listBlogPostsHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entities, err := repo.ListBlogPosts(r.Context())
		if err != nil {
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		items := make([]map[string]any, 0, len(entities))
		for _, entity := range entities {
			items = append(items, entity.ToDTO())
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

func getBlogPostHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := repo.FindBlogPost(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if IsNotFound(err) {
				httpx.Error(w, http.StatusNotFound, "blog post not found")
				return
			}
			httpx.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"data": entity.ToDTO()})
	}
}
