package constants

const (
	ERROR_INTERNAL_ERROR    = "ERRO INTERNO. TENTE NOVAMENTE."
	INVALID_INPUT           = "DADOS INVÁLIDOS"
	INVALID_SPOT            = "LOCAL INVÁLIDO"
	INVALID_DAY             = "DIA INVÁLIDO"
	SPOT_UNAVAILABLE        = "ESTE LOCAL ACABOU DE SER RESERVADO OU ESTÁ EM PROCESSO."
	SPOT_RESERVED_NO_BLOCK  = "ESTE LOCAL JÁ POSSUI UMA RESERVA. LIBERE-O ANTES DE BLOQUEAR."
	SPOT_NOT_FOUND          = "NENHUMA RESERVA PARA ESTE LOCAL"
	SPOT_NOT_RESERVED       = "ESTE LOCAL NÃO POSSUI RESERVA CONFIRMADA"
	UNDERAGE                = "ENTRADA PERMITIDA APENAS PARA +18 ANOS."
	INVALID_AGE             = "IDADE INVÁLIDA"
	GUEST_FORM_INCOMPLETE   = "PREENCHA NOME E TELEFONE"
	RECEIPT_REQUIRED        = "ANEXE O COMPROVANTE DE PAGAMENTO"
	RECEIPT_NOT_IMAGE       = "O COMPROVANTE DEVE SER UMA IMAGEM"
	NO_RECEIPT              = "ESTA RESERVA NÃO POSSUI COMPROVANTE"
	INVALID_PRICE           = "VALOR INVÁLIDO NA TABELA DE PREÇOS"
	FLYER_REQUIRED          = "ENVIE A IMAGEM DO FLYER"
	FLYER_NOT_IMAGE         = "O FLYER DEVE SER UMA IMAGEM"
	FLYER_NOT_FOUND         = "NENHUM FLYER PARA ESTE DIA"
	FLYER_SAVED             = "FLYER ATUALIZADO"
	PRICES_SAVED            = "CONFIGURAÇÕES SALVAS COM SUCESSO!"
	PRICES_SAVE_FAILED      = "ERRO AO SALVAR PREÇOS."
	MISSING_LOGIN_INPUT     = "INFORME USUÁRIO E SENHA"
	INVALID_CREDENTIALS     = "USUÁRIO OU SENHA INCORRETOS. VERIFIQUE SEUS DADOS."
	MISSING_TOKEN           = "SESSÃO NÃO ENCONTRADA"
	INVALID_TOKEN           = "SESSÃO INVÁLIDA OU EXPIRADA"
	TOO_MANY_REQUESTS       = "MUITAS TENTATIVAS. AGUARDE UM MOMENTO."
	RESERVATION_RELEASED    = "LOCAL LIBERADO"
	LOGOUT_SUCCESS          = "DESCONECTADO"
	CHAT_MESSAGE_REQUIRED   = "DIGITE UMA MENSAGEM"
	CHAT_MAINTENANCE        = "ESTOU EM MANUTENÇÃO NO MOMENTO. COMO POSSO AJUDAR COM OUTRA QUESTÃO?"
	CHAT_EMPTY_RESPONSE     = "DESCULPE, TIVE UM PROBLEMA AO PROCESSAR SUA SOLICITAÇÃO."
	CHAT_OFFLINE            = "NO MOMENTO ESTOU OFFLINE, MAS VOCÊ PODE SEGUIR COM SUA RESERVA NORMALMENTE."
)
