package nlu

import "jarvis-assistant/internal/assistant"

// The tables below drive the whole parser. Matching is plain substring
// containment on the lowercased utterance, so cross-table ordering is the
// only disambiguation mechanism: more specific intents come before the
// generic create phrases, and each table is scanned top to bottom with the
// first match winning. Do not reorder.

type intentPatterns struct {
	intent  assistant.Intent
	phrases []string
}

var intentTable = []intentPatterns{
	{assistant.IntentDeleteTask, []string{
		"excluir tarefa",
		"deletar tarefa",
		"remover tarefa",
		"apagar tarefa",
	}},
	{assistant.IntentDeleteAlarm, []string{
		"excluir alarme",
		"deletar alarme",
		"remover alarme",
		"apagar alarme",
	}},
	{assistant.IntentCompleteTask, []string{
		"marcar como concluída",
		"concluir tarefa",
		"tarefa concluída",
		"feito",
		"pronto",
	}},
	{assistant.IntentEditTask, []string{
		"editar tarefa",
		"alterar tarefa",
		"mudar tarefa",
		"atualizar tarefa",
	}},
	{assistant.IntentEditAlarm, []string{
		"editar alarme",
		"alterar alarme",
		"mudar alarme",
		"atualizar alarme",
	}},
	{assistant.IntentListTasks, []string{
		"listar tarefas",
		"minhas tarefas",
		"o que tenho",
		"o que preciso fazer",
		"quais são as tarefas",
	}},
	{assistant.IntentListAlarms, []string{
		"listar alarmes",
		"meus alarmes",
		"quais alarmes",
		"quais são os meus alarmes",
	}},
	{assistant.IntentCreateAlarm, []string{
		"criar alarme",
		"novo alarme",
		"me acorde",
		"despertar",
		"lembrete",
	}},
	{assistant.IntentCreateTask, []string{
		"adicionar tarefa",
		"criar tarefa",
		"nova tarefa",
		"lembrar",
		"me lembre",
		"adicione",
	}},
}

type datePattern struct {
	phrase     string
	offsetDays int
}

var dateTable = []datePattern{
	{"hoje", 0},
	{"hoje à noite", 0},
	{"hoje de manhã", 0},
	{"hoje de tarde", 0},
	{"amanhã", 1},
	{"amanhã de manhã", 1},
	{"amanhã à tarde", 1},
	{"amanhã à noite", 1},
	{"depois de amanhã", 2},
	{"semana que vem", 7},
	{"próxima semana", 7},
	{"próximo mês", 30},
}

type timePattern struct {
	phrase string
	clock  string // canonical HH:MM, 24-hour
}

var timeTable = []timePattern{
	{"7 da manhã", "07:00"},
	{"8 da manhã", "08:00"},
	{"9 da manhã", "09:00"},
	{"10 da manhã", "10:00"},
	{"11 da manhã", "11:00"},
	{"meio-dia", "12:00"},
	{"12 da tarde", "12:00"},
	{"1 da tarde", "13:00"},
	{"2 da tarde", "14:00"},
	{"3 da tarde", "15:00"},
	{"4 da tarde", "16:00"},
	{"5 da tarde", "17:00"},
	{"6 da tarde", "18:00"},
	{"7 da noite", "19:00"},
	{"8 da noite", "20:00"},
	{"9 da noite", "21:00"},
	{"10 da noite", "22:00"},
	{"11 da noite", "23:00"},
	{"meia-noite", "00:00"},
	{"à noite", "19:00"},
	{"de manhã", "08:00"},
	{"de tarde", "14:00"},
	{"de noite", "19:00"},
}

var dailyPhrases = []string{"diário", "todo dia", "cada dia"}

var weeklyPhrases = []string{"semanal", "toda semana", "cada semana"}
