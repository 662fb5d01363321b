package usecase

// User-facing reply messages. The assistant speaks Portuguese.
const (
	MsgUnknown = "Desculpe, não entendi. Você pode me pedir para criar uma tarefa, criar um alarme, listar tarefas ou alarmes, ou gerenciar itens existentes."

	MsgAskTaskTitle         = "Qual é o título da tarefa?"
	MsgAskTaskDateFmt       = "Quando você quer fazer \"%s\"? (ex: hoje, amanhã, segunda-feira)"
	MsgConfirmTaskFmt       = "Confirma a tarefa \"%s\" para %s %s?"
	MsgNoSpecificTime       = "sem hora específica"
	MsgTaskInsufficient     = "Informações insuficientes para criar a tarefa."
	MsgTaskCreatedFmt       = "✅ Tarefa \"%s\" criada com sucesso para %s%s."
	MsgTaskDeleted          = "✅ Tarefa excluída com sucesso."
	MsgTaskNotFound         = "Tarefa não encontrada."
	MsgAskWhichTaskDelete   = "Qual tarefa você quer excluir?"
	MsgTaskCompletedFmt     = "✅ Tarefa \"%s\" marcada como concluída."
	MsgAskWhichTaskComplete = "Qual tarefa você quer marcar como concluída?"
	MsgAskWhatEditTask      = "Qual tarefa você quer editar e o que deseja mudar?"

	MsgAskAlarmDescription = "Qual é a descrição do alarme?"
	MsgAskAlarmWhen        = "Quando você quer ser lembrado? (ex: amanhã às 7 da manhã)"
	MsgConfirmAlarmFmt     = "Confirma o alarme \"%s\" para %s às %s?"
	MsgAlarmInsufficient   = "Informações insuficientes para criar o alarme."
	MsgAlarmCreatedFmt     = "✅ Alarme \"%s\" criado com sucesso para %s às %s."
	MsgAlarmDeleted        = "✅ Alarme excluído com sucesso."
	MsgAlarmNotFound       = "Alarme não encontrado."
	MsgAskWhichAlarmDelete = "Qual alarme você quer excluir?"
	MsgAskWhatEditAlarm    = "Qual alarme você quer editar e o que deseja mudar?"

	MsgNoTasks        = "Você não tem nenhuma tarefa."
	MsgTasksHeader    = "📋 Suas tarefas:\n\n"
	MsgTodayHeader    = "📅 Hoje:\n"
	MsgWeekHeader     = "📆 Semana:\n"
	MsgNoDateHeader   = "📌 Sem data:\n"
	MsgNoAlarms       = "Você não tem nenhum alarme."
	MsgNoActiveAlarms = "Você não tem alarmes ativos."
	MsgAlarmsHeader   = "🔔 Seus alarmes:\n\n"

	MsgNothingPending = "Nenhum comando pendente para confirmar."
	MsgCancelled      = "Operação cancelada."
	MsgConfirmed      = "Comando confirmado."
)

// Recurrence suffixes for alarm listing.
const (
	SuffixDaily  = " (diário)"
	SuffixWeekly = " (semanal)"
)
