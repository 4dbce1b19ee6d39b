package web

import (
	"net/http"
	"os"
	"path/filepath"
)

// Картинки, которые страницы показывают, если файл есть.
var knownImages = map[string]string{
	"logo":      "logo.png",
	"login":     "login.png",
	"dashboard": "dashboard.png",
}

// Assets — необязательные картинки из каталога конфига.
// Отсутствующий файл не ошибка: страница просто не выводит <img>.
type Assets struct {
	dir string
}

// NewAssets создаёт Assets для каталога dir.
func NewAssets(dir string) Assets {
	return Assets{dir: dir}
}

// Available проверяет наличие каждой картинки на момент запроса.
func (a Assets) Available() map[string]bool {
	out := make(map[string]bool, len(knownImages))
	for key, file := range knownImages {
		out[key] = a.exists(file)
	}
	return out
}

func (a Assets) exists(file string) bool {
	if a.dir == "" {
		return false
	}
	st, err := os.Stat(filepath.Join(a.dir, file))
	return err == nil && st.Mode().IsRegular()
}

// Serve отдаёт картинку по имени файла. Отдаются только известные файлы.
func (a Assets) Serve(w http.ResponseWriter, r *http.Request, file string) {
	for _, known := range knownImages {
		if known == file && a.exists(file) {
			http.ServeFile(w, r, filepath.Join(a.dir, file))
			return
		}
	}
	http.NotFound(w, r)
}
