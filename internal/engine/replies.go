package engine

import (
	"fmt"
	"strings"

	"github.com/kcalbot-dev/kcalbot/internal/session"
)

// Reply is the outbound message contract: text plus an optional small set
// of quick-reply choices for the transport to render.
type Reply struct {
	Text    string
	Choices []string
}

// Quick-reply button labels. Transports echo the label back as the
// message text when the user taps a button.
const (
	btnAddFood     = "🍽 Добавить еду"
	btnStats       = "📊 Статистика"
	btnClearDay    = "🗑 Сбросить день"
	btnChangeGoal  = "🎯 Изменить цель"
	btnHelp        = "❓ Помощь"
	btnAccept      = "✅ Добавить"
	btnEditKcal    = "✏️ Изменить калории"
	btnSearchDB    = "🔍 Найти в базе"
	btnCancel      = "❌ Отмена"
	btnKeepDefault = "✅ Оставить 100 г"
	btnRewrite     = "✏️ Написать заново"
)

var mainMenuChoices = []string{btnAddFood, btnStats, btnClearDay, btnChangeGoal, btnHelp}

var confirmChoices = []string{btnAccept, btnEditKcal, btnSearchDB, btnCancel}

var reminderChoices = []string{btnKeepDefault, btnRewrite, btnCancel}

var searchConfirmChoices = []string{btnAccept, btnCancel}

const welcomeText = `🍎 Считаю калории и веду дневник питания.

Опишите еду свободным текстом:
• "200г риса с курицей"
• "2 яйца и кофе"
• "Яблоко 150г"

Начните с дневной нормы калорий.`

const helpText = `Команды:
/setgoal — установить дневную норму
/add — добавить еду
/today — статистика за день
/clear — сбросить данные за день
/help — помощь

Примеры описания еды:
• "200г риса с курицей"
• "2 яйца и кофе"
• "Яблоко 150г"`

const (
	askGoalText        = "Введите дневную норму калорий (от 500 до 10000):"
	badGoalText        = "Не похоже на норму калорий. Введите число от 500 до 10000."
	askFoodText        = "Что вы съели? Опишите:"
	askManualKcalText  = "Введите калории вручную (от 1 до 5000):"
	badManualKcalText  = "Введите число от 1 до 5000."
	askSearchText      = "Введите название продукта для поиска:"
	needGoalFirstText  = "Сначала установите дневную норму: /setgoal"
	staleText          = "⌛ Запрос устарел, начните заново."
	rephraseText       = "Не могу разобрать описание. Попробуйте переформулировать или добавьте продукт вручную."
	cancelledText      = "Отменено."
	rateLimitText      = "Слишком много сообщений, подождите немного."
	useMenuText        = "Чтобы добавить еду, нажмите «🍽 Добавить еду» или отправьте /add."
	dayClearedText     = "✅ Данные за день очищены."
	reminderText       = "Не вижу количество. Сколько это было? Укажите, например, «150г», или оставьте порцию по умолчанию."
	oversizedText      = "⚠️ Очень большое количество, проверьте, нет ли опечатки."
	quantityRepeatText = "Всё ещё не вижу количество. Укажите, например, «150г»."
)

func goalSetText(goal int) string {
	return fmt.Sprintf("✅ Норма установлена: %d ккал\nТеперь добавляйте еду!", goal)
}

func goalChangedText(goal int) string {
	return fmt.Sprintf("✅ Новая норма: %d ккал. Дневник за сегодня сохранён.", goal)
}

func statsText(s *session.UserSession) string {
	percent := 0
	if s.DailyGoal > 0 {
		percent = int(float64(s.Consumed)/float64(s.DailyGoal)*100 + 0.5)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика за день\n\n")
	fmt.Fprintf(&b, "🎯 Норма: %d ккал\n", s.DailyGoal)
	fmt.Fprintf(&b, "🍽 Съедено: %d ккал\n", s.Consumed)
	fmt.Fprintf(&b, "✅ Осталось: %d ккал\n", s.Remaining())
	fmt.Fprintf(&b, "📈 %d%% выполнено", percent)
	if len(s.Foods) > 0 {
		b.WriteString("\n\nСегодня:")
		for _, f := range s.Foods {
			marker := ""
			if f.Source == session.SourceEstimate || f.Source == session.SourceAI {
				marker = "~"
			}
			fmt.Fprintf(&b, "\n• %s — %s%d ккал", f.Name, marker, f.Calories)
		}
	}
	return b.String()
}

func draftText(d session.Draft) string {
	var b strings.Builder
	switch d.Source {
	case session.SourceDatabase:
		fmt.Fprintf(&b, "Нашёл: %s\n", d.Name)
	case session.SourceAI:
		fmt.Fprintf(&b, "🤖 Оценка нейросети: %s\n", d.Name)
	default:
		fmt.Fprintf(&b, "≈ Примерная оценка: %s\n", d.Name)
	}
	fmt.Fprintf(&b, "Количество: %.0f г\n", d.QuantityGrams)
	fmt.Fprintf(&b, "Калории: %d ккал", d.Calories)
	if d.Protein > 0 || d.Fat > 0 || d.Carbs > 0 {
		fmt.Fprintf(&b, "\nБ/Ж/У: %.1f / %.1f / %.1f г", d.Protein, d.Fat, d.Carbs)
	}
	if d.Source != session.SourceDatabase {
		fmt.Fprintf(&b, "\n\n(уверенность %.0f%%)", d.Confidence*100)
	}
	if d.Oversized {
		b.WriteString("\n" + oversizedText)
	}
	b.WriteString("\n\nДобавить в дневник?")
	return b.String()
}

func addedText(s *session.UserSession, item session.LoggedFoodItem) string {
	return fmt.Sprintf("✅ Добавлено: %s — %d ккал\n📊 Всего: %d/%d ккал\n✅ Осталось: %d ккал",
		item.Name, item.Calories, s.Consumed, s.DailyGoal, s.Remaining())
}

func searchMissText(suggestions []string) string {
	if len(suggestions) == 0 {
		return "Ничего не нашлось. Попробуйте другое название."
	}
	return "Ничего не нашлось. Похожие продукты:\n• " + strings.Join(suggestions, "\n• ")
}
