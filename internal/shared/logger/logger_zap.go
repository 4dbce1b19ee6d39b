// Package logger содержит общий логгер для server и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и удобные методы для логирования HTTP-запросов и событий
// страниц (логин, регистрация, запуск проверок).
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile — файл логов по умолчанию (относительно рабочей директории).
var DefaultFile = filepath.Join("runtime", "logs", "careermind.log")

// Options — параметры файлового логгера.
type Options struct {
	// File — путь к файлу логов; пустая строка означает DefaultFile.
	File string
	// Level — debug|info|warn|error; пустая строка означает info.
	Level string
	// MaxSizeMB, MaxBackups, MaxAgeDays — параметры ротации lumberjack.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
// helpers пропускает один кадр стека, чтобы LogRequest и LogEvent
// указывали caller на вызывающий код, а не на этот файл.
type HTTPLogger struct {
	*zap.Logger
	helpers *zap.Logger
}

func wrap(l *zap.Logger) *HTTPLogger {
	return &HTTPLogger{Logger: l, helpers: l.WithOptions(zap.AddCallerSkip(1))}
}

// NewHTTPLogger создаёт файловый zap-логгер с настройками по умолчанию.
func NewHTTPLogger() *HTTPLogger {
	return New(Options{})
}

// New создаёт файловый zap-логгер.
//
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(opts Options) *HTTPLogger {
	file := opts.File
	if file == "" {
		file = DefaultFile
	}
	_ = os.MkdirAll(filepath.Dir(file), 0755)

	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 100
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 10
	}
	if opts.MaxAgeDays == 0 {
		opts.MaxAgeDays = 30
	}

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		ParseLevel(opts.Level),
	)

	return wrap(zap.New(core, zap.AddCaller()))
}

// NewNop возвращает логгер, который ничего не пишет. Удобен в тестах.
func NewNop() *HTTPLogger {
	return wrap(zap.NewNop())
}

// ParseLevel переводит строковый уровень из конфига в zapcore.Level.
// Неизвестные значения трактуются как info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri — параметры запроса,
// status — HTTP-статус ответа,
// responseSize — размер ответа в байтах,
// duration — длительность обработки запроса в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.helpers.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// LogEvent записывает доменное событие (регистрация, вход, выход, проверка резюме).
// Пароли сюда не передаются.
func (logger *HTTPLogger) LogEvent(event, email string, fields ...zap.Field) {
	all := append([]zap.Field{zap.String("event", event), zap.String("email", email)}, fields...)
	logger.helpers.Info("page event", all...)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
