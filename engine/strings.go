package engine

// Lang is a settings-file language code
const (
	LangEN = "en"
	LangRU = "ru"
)

// stringTables holds the UI string tables. Missing keys fall back to English.
var stringTables = map[string]map[string]string{
	LangEN: {
		"title":        "MAZE 3D",
		"menu.start":   "Start",
		"menu.resume":  "Resume",
		"menu.new":     "New maze",
		"menu.quit":    "Quit",
		"menu.diff":    "Difficulty",
		"menu.mode":    "Mode",
		"menu.render":  "Render",
		"menu.shadows": "Shadows",
		"menu.colors":  "Colors",
		"menu.unicode": "Unicode",
		"menu.mouse":   "Mouse look",
		"menu.hud":     "HUD",
		"menu.fov":     "FOV",
		"menu.lang":    "Language",
		"menu.hint":    "arrows: navigate/adjust  enter: select  esc: back",

		"mode.default":      "walk",
		"mode.free":         "fly",
		"mode.demo_default": "demo walk",
		"mode.demo_free":    "demo fly",

		"on":   "on",
		"off":  "off",
		"auto": "auto",

		"hud.controls": "wasd move  arrows look  m map  esc menu",
		"hud.mode":     "mode",
		"hud.diff":     "diff",
		"hud.dist":     "dist",
		"hud.fov":      "fov",

		"map.title": "map",

		"win.title": "You made it!",
		"win.time":  "Time",
		"win.key":   "press any key",

		"quit.confirm": "Quit? (q again to confirm)",
		"too_small":    "terminal too small",
	},
	LangRU: {
		"title":        "ЛАБИРИНТ 3D",
		"menu.start":   "Старт",
		"menu.resume":  "Продолжить",
		"menu.new":     "Новый лабиринт",
		"menu.quit":    "Выход",
		"menu.diff":    "Сложность",
		"menu.mode":    "Режим",
		"menu.render":  "Рендер",
		"menu.shadows": "Тени",
		"menu.colors":  "Цвет",
		"menu.unicode": "Юникод",
		"menu.mouse":   "Мышь",
		"menu.hud":     "Панель",
		"menu.fov":     "Обзор",
		"menu.lang":    "Язык",
		"menu.hint":    "стрелки: выбор/изменение  enter: подтвердить  esc: назад",

		"mode.default":      "ходьба",
		"mode.free":         "полёт",
		"mode.demo_default": "демо ходьба",
		"mode.demo_free":    "демо полёт",

		"on":   "вкл",
		"off":  "выкл",
		"auto": "авто",

		"hud.controls": "wasd ходить  стрелки камера  m карта  esc меню",
		"hud.mode":     "режим",
		"hud.diff":     "слж",
		"hud.dist":     "путь",
		"hud.fov":      "обзор",

		"map.title": "карта",

		"win.title": "Выход найден!",
		"win.time":  "Время",
		"win.key":   "нажмите любую клавишу",

		"quit.confirm": "Выйти? (q для подтверждения)",
		"too_small":    "терминал слишком мал",
	},
}

// Tr looks up a UI string for the given language
func Tr(lang, key string) string {
	if table, ok := stringTables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := stringTables[LangEN][key]; ok {
		return s
	}
	return key
}
