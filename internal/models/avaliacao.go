package models

import "time"

// Avaliacao é o formulário de avaliação técnica de site. Somente
// ClienteNome, DataAvaliacao e Status são obrigatórios; o restante do
// catálogo é opcional e representado por ponteiros (nil = não informado).
//
// Os blocos Q1..Q5 seguem os quantitativos do formulário em papel:
// Q1 cabeamento UTP, Q2 switch, Q3 cabeamento óptico, Q4 câmeras/CFTV,
// Q5 infraestrutura. Campos marcados como legado existem apenas para
// compatibilidade com formulários antigos já gravados.
type Avaliacao struct {
	ID int64 `json:"id"`

	Equipe               *string `json:"equipe,omitempty"`
	ResponsavelAvaliacao *string `json:"responsavel_avaliacao,omitempty"`
	TipoFormulario       *string `json:"tipo_formulario,omitempty"`

	ClienteNome   string  `json:"cliente_nome"`
	Objeto        *string `json:"objeto,omitempty"`
	Local         *string `json:"local,omitempty"`
	DataAvaliacao Date    `json:"data_avaliacao"`
	Contato       *string `json:"contato,omitempty"`
	EmailCliente  *string `json:"email_cliente,omitempty"`

	EscopoTexto             *string `json:"escopo_texto,omitempty"`
	ServicoForaMontesClaros *bool   `json:"servico_fora_montes_claros,omitempty"`
	ServicoIntermediario    *bool   `json:"servico_intermediario,omitempty"`

	// Quantitativo 01 — cabeamento UTP / patch panel.
	Q1CategoriaCab            *string `json:"q1_categoria_cab,omitempty"`
	Q1Blindado                *bool   `json:"q1_blindado,omitempty"`
	Q1NovoPatchPanel          *bool   `json:"q1_novo_patch_panel,omitempty"`
	Q1IncluirGuia             *bool   `json:"q1_incluir_guia,omitempty"`
	Q1QtdPontosRede           *int    `json:"q1_qtd_pontos_rede,omitempty"`
	Q1QtdCabos                *int    `json:"q1_qtd_cabos,omitempty"`
	Q1QtdPortasPatchPanel     *int    `json:"q1_qtd_portas_patch_panel,omitempty"`
	Q1QtdPatchCords           *int    `json:"q1_qtd_patch_cords,omitempty"`
	Q1MarcaCab                *string `json:"q1_marca_cab,omitempty"`
	Q1ModeloPatchPanel        *string `json:"q1_modelo_patch_panel,omitempty"`
	Q1QtdGuiasCabos           *int    `json:"q1_qtd_guias_cabos,omitempty"`
	Q1PatchCordsModelo        *string `json:"q1_patch_cords_modelo,omitempty"`
	Q1PatchCordsCor           *string `json:"q1_patch_cords_cor,omitempty"`
	Q1PatchPanelExistenteNome *string `json:"q1_patch_panel_existente_nome,omitempty"`

	// Quantitativo 02 — switch.
	Q2NovoSwitch          *bool   `json:"q2_novo_switch,omitempty"`
	Q2SwitchPoe           *bool   `json:"q2_switch_poe,omitempty"`     // legado
	Q2RedeIndustrial      *bool   `json:"q2_rede_industrial,omitempty"` // legado
	Q2QtdPontosRede       *int    `json:"q2_qtd_pontos_rede,omitempty"` // legado
	Q2QtdPortasSwitch     *int    `json:"q2_qtd_portas_switch,omitempty"` // legado
	Q2FornecedorSwitch    *string `json:"q2_fornecedor_switch,omitempty"`
	Q2ModeloSwitch        *string `json:"q2_modelo_switch,omitempty"`
	Q2SwitchFotoURL       *string `json:"q2_switch_foto_url,omitempty"`
	Q2SwitchExistenteNome *string `json:"q2_switch_existente_nome,omitempty"`
	Q2Observacoes         *string `json:"q2_observacoes,omitempty"`

	// Quantitativo 03 — cabeamento óptico.
	Q3TipoFibra          *string  `json:"q3_tipo_fibra,omitempty"`
	Q3QtdFibrasPorCabo   *int     `json:"q3_qtd_fibras_por_cabo,omitempty"`
	Q3TipoConector       *string  `json:"q3_tipo_conector,omitempty"`
	Q3NovoDIO            *bool    `json:"q3_novo_dio,omitempty"`
	Q3CaixaTerminacao    *bool    `json:"q3_caixa_terminacao,omitempty"`
	Q3TipoCaboOptico     *string  `json:"q3_tipo_cabo_optico,omitempty"`
	Q3CaixaEmenda        *bool    `json:"q3_caixa_emenda,omitempty"`
	Q3QtdCabos           *int     `json:"q3_qtd_cabos,omitempty"`
	Q3TamanhoTotalM      *float64 `json:"q3_tamanho_total_m,omitempty"`
	Q3QtdFibras          *int     `json:"q3_qtd_fibras,omitempty"`
	Q3QtdPortasDIO       *int     `json:"q3_qtd_portas_dio,omitempty"`
	Q3QtdCordoesOpticos  *int     `json:"q3_qtd_cordoes_opticos,omitempty"`
	Q3MarcaCabOptico     *string  `json:"q3_marca_cab_optico,omitempty"`
	Q3ModeloDIO          *string  `json:"q3_modelo_dio,omitempty"`
	Q3ModeloCordaoOptico *string  `json:"q3_modelo_cordao_optico,omitempty"`
	Q3Observacoes        *string  `json:"q3_observacoes,omitempty"`

	// Quantitativo 04 — câmeras, NVR/DVR, conversores e GBIC.
	Q4Camera               *bool   `json:"q4_camera,omitempty"`
	Q4NvrDvr               *bool   `json:"q4_nvr_dvr,omitempty"`
	Q4AccessPoint          *bool   `json:"q4_access_point,omitempty"` // legado
	Q4ConversorMidia       *bool   `json:"q4_conversor_midia,omitempty"`
	Q4Gbic                 *bool   `json:"q4_gbic,omitempty"`
	Q4Switch               *bool   `json:"q4_switch,omitempty"` // legado
	Q4ConversorMidiaModelo *string `json:"q4_conversor_midia_modelo,omitempty"`
	Q4GbicModelo           *string `json:"q4_gbic_modelo,omitempty"`
	Q4CameraNova           *bool   `json:"q4_camera_nova,omitempty"`
	Q4CameraModelo         *string `json:"q4_camera_modelo,omitempty"`
	Q4CameraQtd            *int    `json:"q4_camera_qtd,omitempty"`
	Q4CameraFornecedor     *string `json:"q4_camera_fornecedor,omitempty"`
	Q4NvrDvrModelo         *string `json:"q4_nvr_dvr_modelo,omitempty"`

	// Quantitativo 05 — infraestrutura.
	Q5NovaEletrocalha       *bool   `json:"q5_nova_eletrocalha,omitempty"`
	Q5NovoEletroduto        *bool   `json:"q5_novo_eletroduto,omitempty"`
	Q5NovoRack              *bool   `json:"q5_novo_rack,omitempty"`
	Q5InstalacaoEletrica    *bool   `json:"q5_instalacao_eletrica,omitempty"`
	Q5Nobreak               *bool   `json:"q5_nobreak,omitempty"`
	Q5Serralheria           *bool   `json:"q5_serralheria,omitempty"`
	Q5EletrocalhaModelo     *string `json:"q5_eletrocalha_modelo,omitempty"`
	Q5EletrocalhaQtd        *int    `json:"q5_eletrocalha_qtd,omitempty"`
	Q5EletrodutoModelo      *string `json:"q5_eletroduto_modelo,omitempty"`
	Q5EletrodutoQtd         *int    `json:"q5_eletroduto_qtd,omitempty"`
	Q5RackModelo            *string `json:"q5_rack_modelo,omitempty"`
	Q5RackQtd               *int    `json:"q5_rack_qtd,omitempty"`
	Q5NobreakModelo         *string `json:"q5_nobreak_modelo,omitempty"`
	Q5NobreakQtd            *int    `json:"q5_nobreak_qtd,omitempty"`
	Q5SerralheriaDescricao  *string `json:"q5_serralheria_descricao,omitempty"`
	Q5InstalacaoEletricaObs *string `json:"q5_instalacao_eletrica_obs,omitempty"`

	LocalizacaoImagem1URL *string `json:"localizacao_imagem1_url,omitempty"`
	LocalizacaoImagem2URL *string `json:"localizacao_imagem2_url,omitempty"`

	// Pré-requisitos de execução.
	PreTrabalhoAltura       *bool   `json:"pre_trabalho_altura,omitempty"`
	PrePlataforma           *bool   `json:"pre_plataforma,omitempty"`
	PrePlataformaModelo     *string `json:"pre_plataforma_modelo,omitempty"`
	PrePlataformaDias       *int    `json:"pre_plataforma_dias,omitempty"`
	PreForaHorarioComercial *bool   `json:"pre_fora_horario_comercial,omitempty"`
	PreVeiculoNortetel      *bool   `json:"pre_veiculo_nortetel,omitempty"`
	PreContainerMateriais   *bool   `json:"pre_container_materiais,omitempty"`

	// Horas trabalhadas por função.
	EncarregadoDias         *int `json:"encarregado_dias,omitempty"`
	InstaladorDias          *int `json:"instalador_dias,omitempty"`
	AuxiliarDias            *int `json:"auxiliar_dias,omitempty"`
	TecnicoDeInstalacaoDias *int `json:"tecnico_de_instalacao_dias,omitempty"`
	TecnicoEmSegurancaDias  *int `json:"tecnico_em_seguranca_dias,omitempty"`

	EncarregadoHoraExtra         *int `json:"encarregado_hora_extra,omitempty"`
	InstaladorHoraExtra          *int `json:"instalador_hora_extra,omitempty"`
	AuxiliarHoraExtra            *int `json:"auxiliar_hora_extra,omitempty"`
	TecnicoDeInstalacaoHoraExtra *int `json:"tecnico_de_instalacao_hora_extra,omitempty"`
	TecnicoEmSegurancaHoraExtra  *int `json:"tecnico_em_seguranca_hora_extra,omitempty"`

	EncarregadoTrabalhoDomingo         *int `json:"encarregado_trabalho_domingo,omitempty"`
	InstaladorTrabalhoDomingo          *int `json:"instalador_trabalho_domingo,omitempty"`
	AuxiliarTrabalhoDomingo            *int `json:"auxiliar_trabalho_domingo,omitempty"`
	TecnicoDeInstalacaoTrabalhoDomingo *int `json:"tecnico_de_instalacao_trabalho_domingo,omitempty"`
	TecnicoEmSegurancaTrabalhoDomingo  *int `json:"tecnico_em_seguranca_trabalho_domingo,omitempty"`

	AlmocoQtd *int `json:"almoco_qtd,omitempty"`
	LancheQtd *int `json:"lanche_qtd,omitempty"`

	// Prazos e entregáveis.
	CronogramaExecucao   *bool `json:"cronograma_execucao,omitempty"`
	DiasInstalacao       *int  `json:"dias_instalacao,omitempty"`
	AsBuilt              *bool `json:"as_built,omitempty"`
	DiasEntregaRelatorio *int  `json:"dias_entrega_relatorio,omitempty"`
	Art                  *bool `json:"art,omitempty"`

	Status       string    `json:"status"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// StatusAberto é o status inicial de toda avaliação recém-criada.
const StatusAberto = "aberto"
