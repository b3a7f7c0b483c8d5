package record

// Fixed catalogs from the mobile app's picker screens. Labels stay in
// Portuguese because they are stored verbatim in the record fields.

// CrisisCatalog maps seizure type to its subtypes.
var CrisisCatalog = map[string][]string{
	"Crise Focal": {
		"Sensorial",
		"Motora",
		"Autonômica",
		"Psíquica",
	},
	"Crise Focal com Alteração da Consciência": {
		"Automatismos",
		"Confusão",
	},
	"Crise Generalizada": {
		"Tônico-clônica",
		"Ausência",
		"Mioclônica",
		"Atônica",
	},
	"Crise Gelástica": {
		"Riso involuntário",
	},
	"Crise Reflexa": {
		"Fotossensível",
		"Auditiva",
	},
}

// FoodCatalog maps food group to its items.
var FoodCatalog = map[string][]string{
	"Frutas":        {"Maçã", "Banana", "Laranja", "Abacate", "Uva", "Melancia", "Pera", "Manga", "Kiwi", "Morango"},
	"Legumes":       {"Cenoura", "Batata", "Abóbora", "Brócolis", "Couve", "Espinafre", "Pepino", "Tomate", "Beterraba", "Rabanete"},
	"Proteínas":     {"Frango", "Carne", "Peixe", "Ovo", "Tofu", "Feijão", "Grão-de-bico", "Lentilha", "Queijo", "Iogurte"},
	"Carboidratos":  {"Arroz", "Macarrão", "Pão", "Batata", "Aveia", "Quinoa", "Milho", "Cuscuz", "Mandioca", "Pão integral"},
	"Laticínios":    {"Leite", "Queijo", "Iogurte", "Manteiga", "Requeijão", "Creme de leite", "Kefir", "Ricota", "Coalhada", "Sorvete"},
	"Gorduras":      {"Azeite", "Abacate", "Castanhas", "Manteiga", "Óleo de coco", "Margarina", "Sementes", "Nozes", "Amendoim", "Avelã"},
	"Doces":         {"Chocolate", "Bolo", "Sorvete", "Balas", "Pudim", "Cookie", "Doce de leite", "Brigadeiro", "Guloseimas", "Churros"},
	"Bebidas":       {"Água", "Suco", "Refrigerante", "Café", "Chá", "Leite", "Smoothie", "Vitamina", "Energético", "Água de coco"},
	"Lanches":       {"Sanduíche", "Pizza", "Salgadinho", "Pipoca", "Torrada", "Wrap", "Hambúrguer", "Hot dog", "Sushi", "Tapioca"},
	"Sopas":         {"Sopa de legumes", "Caldo verde", "Sopa de frango", "Sopa de carne", "Canja", "Creme de milho", "Sopa de abóbora", "Sopa de lentilha", "Sopa de feijão", "Sopa de batata"},
}

// Moods accepted by the diary form.
var Moods = []string{"Bom", "Neutro", "Ruim"}

func ValidMood(mood string) bool {
	for _, m := range Moods {
		if mood == m {
			return true
		}
	}
	return false
}

func ValidCrisis(crisisType, subtype string) bool {
	subs, ok := CrisisCatalog[crisisType]
	if !ok {
		return false
	}
	for _, s := range subs {
		if subtype == s {
			return true
		}
	}
	return false
}

func ValidMeal(group, item string) bool {
	items, ok := FoodCatalog[group]
	if !ok {
		return false
	}
	for _, i := range items {
		if item == i {
			return true
		}
	}
	return false
}
