package seed

type authorSeed struct {
	Name string
	Bio  string
}

type bookSeed struct {
	Title     string
	Author    string
	Year      int
	Pages     int
	Genre     string
	Available bool
}

var authors = []authorSeed{
	{"Machado de Assis", "Joaquim Maria Machado de Assis foi um escritor brasileiro, considerado por muitos críticos, estudiosos, escritores e leitores como o maior nome da literatura brasileira."},
	{"Clarice Lispector", "Clarice Lispector foi uma escritora e jornalista brasileira nascida na Ucrânia. Autora de romances, contos e ensaios, é considerada uma das escritoras brasileiras mais importantes do século XX."},
	{"Jorge Amado", "Jorge Amado foi um dos mais famosos e traduzidos escritores brasileiros de todos os tempos. Autor de obras como Dona Flor e Seus Dois Maridos e O Cortiço."},
	{"Carlos Drummond de Andrade", "Carlos Drummond de Andrade foi um poeta, farmacêutico, contista e cronista brasileiro, considerado por muitos o mais influente poeta brasileiro do século XX."},
	{"Cecília Meireles", "Cecília Meireles foi uma poetisa, pintora, jornalista e professora brasileira. É considerada uma das vozes líricas mais importantes da literatura em língua portuguesa."},
	{"Lima Barreto", "Afonso Henriques de Lima Barreto foi um escritor brasileiro. Autor de O Triste Fim de Policarpo Quaresma, é considerado um precursor do Modernismo no Brasil."},
	{"Guimarães Rosa", "João Guimarães Rosa foi um escritor brasileiro, considerado um dos maiores escritores da literatura universal do século XX. Autor de Grande Sertão: Veredas."},
	{"Rachel de Queiroz", "Rachel de Queiroz foi uma escritora, jornalista, cronista e tradutora brasileira. Foi a primeira mulher a ingressar na Academia Brasileira de Letras."},
	{"José Saramago", "José Saramago foi um escritor português, ganhador do Prêmio Nobel de Literatura de 1998. Autor de obras como Ensaio sobre a Cegueira."},
	{"Fernando Pessoa", "Fernando Pessoa foi um poeta, escritor, publicitário, astrólogo, crítico literário, inventor, empresário, tradutor, correspondente comercial, filosófo e comentarista político português."},
}

var books = []bookSeed{
	{"Dom Casmurro", "Machado de Assis", 1899, 256, "Romance", true},
	{"O Cortiço", "Machado de Assis", 1890, 304, "Romance", true},
	{"Memórias Póstumas de Brás Cubas", "Machado de Assis", 1881, 288, "Romance", false},

	{"A Hora da Estrela", "Clarice Lispector", 1977, 192, "Romance", true},
	{"Água Viva", "Clarice Lispector", 1973, 144, "Romance", true},
	{"A Paixão Segundo G.H.", "Clarice Lispector", 1964, 208, "Romance", true},

	{"Dona Flor e Seus Dois Maridos", "Jorge Amado", 1966, 544, "Romance", true},
	{"Capitães da Areia", "Jorge Amado", 1937, 336, "Romance", false},
	{"Gabriela, Cravo e Canela", "Jorge Amado", 1958, 672, "Romance", true},

	{"Alguma Poesia", "Carlos Drummond de Andrade", 1930, 120, "Poesia", true},
	{"A Rosa do Povo", "Carlos Drummond de Andrade", 1945, 168, "Poesia", true},

	{"Viagem", "Cecília Meireles", 1939, 96, "Poesia", true},
	{"Vaga Música", "Cecília Meireles", 1942, 112, "Poesia", false},

	{"O Triste Fim de Policarpo Quaresma", "Lima Barreto", 1915, 272, "Romance", true},
	{"Clara dos Anjos", "Lima Barreto", 1948, 224, "Romance", true},

	{"Grande Sertão: Veredas", "Guimarães Rosa", 1956, 624, "Romance", true},
	{"Sagarana", "Guimarães Rosa", 1946, 368, "Contos", false},

	{"O Quinze", "Rachel de Queiroz", 1930, 192, "Romance", true},
	{"As Três Marias", "Rachel de Queiroz", 1939, 288, "Romance", true},

	{"Ensaio sobre a Cegueira", "José Saramago", 1995, 352, "Romance", true},
	{"O Evangelho Segundo Jesus Cristo", "José Saramago", 1991, 512, "Romance", true},

	{"Mensagem", "Fernando Pessoa", 1934, 96, "Poesia", false},
	{"Livro do Desassossego", "Fernando Pessoa", 1982, 544, "Prosa", true},
}
