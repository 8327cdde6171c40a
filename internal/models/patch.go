package models

// AvaliacaoPatch é o corpo de criação/atualização parcial de uma avaliação.
// Todos os campos são ponteiros: nil significa "não informado" e o campo
// correspondente não é tocado. DataAvaliacao chega como texto YYYY-MM-DD e
// só é convertida (com validação estrita) dentro de Apply.
type AvaliacaoPatch struct {
	Equipe               *string `json:"equipe"`
	ResponsavelAvaliacao *string `json:"responsavel_avaliacao"`
	TipoFormulario       *string `json:"tipo_formulario"`

	ClienteNome   *string `json:"cliente_nome"`
	Objeto        *string `json:"objeto"`
	Local         *string `json:"local"`
	DataAvaliacao *string `json:"data_avaliacao"`
	Contato       *string `json:"contato"`
	EmailCliente  *string `json:"email_cliente"`

	EscopoTexto             *string `json:"escopo_texto"`
	ServicoForaMontesClaros *bool   `json:"servico_fora_montes_claros"`
	ServicoIntermediario    *bool   `json:"servico_intermediario"`

	Q1CategoriaCab            *string `json:"q1_categoria_cab"`
	Q1Blindado                *bool   `json:"q1_blindado"`
	Q1NovoPatchPanel          *bool   `json:"q1_novo_patch_panel"`
	Q1IncluirGuia             *bool   `json:"q1_incluir_guia"`
	Q1QtdPontosRede           *int    `json:"q1_qtd_pontos_rede"`
	Q1QtdCabos                *int    `json:"q1_qtd_cabos"`
	Q1QtdPortasPatchPanel     *int    `json:"q1_qtd_portas_patch_panel"`
	Q1QtdPatchCords           *int    `json:"q1_qtd_patch_cords"`
	Q1MarcaCab                *string `json:"q1_marca_cab"`
	Q1ModeloPatchPanel        *string `json:"q1_modelo_patch_panel"`
	Q1QtdGuiasCabos           *int    `json:"q1_qtd_guias_cabos"`
	Q1PatchCordsModelo        *string `json:"q1_patch_cords_modelo"`
	Q1PatchCordsCor           *string `json:"q1_patch_cords_cor"`
	Q1PatchPanelExistenteNome *string `json:"q1_patch_panel_existente_nome"`

	Q2NovoSwitch          *bool   `json:"q2_novo_switch"`
	Q2SwitchPoe           *bool   `json:"q2_switch_poe"`
	Q2RedeIndustrial      *bool   `json:"q2_rede_industrial"`
	Q2QtdPontosRede       *int    `json:"q2_qtd_pontos_rede"`
	Q2QtdPortasSwitch     *int    `json:"q2_qtd_portas_switch"`
	Q2FornecedorSwitch    *string `json:"q2_fornecedor_switch"`
	Q2ModeloSwitch        *string `json:"q2_modelo_switch"`
	Q2SwitchFotoURL       *string `json:"q2_switch_foto_url"`
	Q2SwitchExistenteNome *string `json:"q2_switch_existente_nome"`
	Q2Observacoes         *string `json:"q2_observacoes"`

	Q3TipoFibra          *string  `json:"q3_tipo_fibra"`
	Q3QtdFibrasPorCabo   *int     `json:"q3_qtd_fibras_por_cabo"`
	Q3TipoConector       *string  `json:"q3_tipo_conector"`
	Q3NovoDIO            *bool    `json:"q3_novo_dio"`
	Q3CaixaTerminacao    *bool    `json:"q3_caixa_terminacao"`
	Q3TipoCaboOptico     *string  `json:"q3_tipo_cabo_optico"`
	Q3CaixaEmenda        *bool    `json:"q3_caixa_emenda"`
	Q3QtdCabos           *int     `json:"q3_qtd_cabos"`
	Q3TamanhoTotalM      *float64 `json:"q3_tamanho_total_m"`
	Q3QtdFibras          *int     `json:"q3_qtd_fibras"`
	Q3QtdPortasDIO       *int     `json:"q3_qtd_portas_dio"`
	Q3QtdCordoesOpticos  *int     `json:"q3_qtd_cordoes_opticos"`
	Q3MarcaCabOptico     *string  `json:"q3_marca_cab_optico"`
	Q3ModeloDIO          *string  `json:"q3_modelo_dio"`
	Q3ModeloCordaoOptico *string  `json:"q3_modelo_cordao_optico"`
	Q3Observacoes        *string  `json:"q3_observacoes"`

	Q4Camera               *bool   `json:"q4_camera"`
	Q4NvrDvr               *bool   `json:"q4_nvr_dvr"`
	Q4AccessPoint          *bool   `json:"q4_access_point"`
	Q4ConversorMidia       *bool   `json:"q4_conversor_midia"`
	Q4Gbic                 *bool   `json:"q4_gbic"`
	Q4Switch               *bool   `json:"q4_switch"`
	Q4ConversorMidiaModelo *string `json:"q4_conversor_midia_modelo"`
	Q4GbicModelo           *string `json:"q4_gbic_modelo"`
	Q4CameraNova           *bool   `json:"q4_camera_nova"`
	Q4CameraModelo         *string `json:"q4_camera_modelo"`
	Q4CameraQtd            *int    `json:"q4_camera_qtd"`
	Q4CameraFornecedor     *string `json:"q4_camera_fornecedor"`
	Q4NvrDvrModelo         *string `json:"q4_nvr_dvr_modelo"`

	Q5NovaEletrocalha       *bool   `json:"q5_nova_eletrocalha"`
	Q5NovoEletroduto        *bool   `json:"q5_novo_eletroduto"`
	Q5NovoRack              *bool   `json:"q5_novo_rack"`
	Q5InstalacaoEletrica    *bool   `json:"q5_instalacao_eletrica"`
	Q5Nobreak               *bool   `json:"q5_nobreak"`
	Q5Serralheria           *bool   `json:"q5_serralheria"`
	Q5EletrocalhaModelo     *string `json:"q5_eletrocalha_modelo"`
	Q5EletrocalhaQtd        *int    `json:"q5_eletrocalha_qtd"`
	Q5EletrodutoModelo      *string `json:"q5_eletroduto_modelo"`
	Q5EletrodutoQtd         *int    `json:"q5_eletroduto_qtd"`
	Q5RackModelo            *string `json:"q5_rack_modelo"`
	Q5RackQtd               *int    `json:"q5_rack_qtd"`
	Q5NobreakModelo         *string `json:"q5_nobreak_modelo"`
	Q5NobreakQtd            *int    `json:"q5_nobreak_qtd"`
	Q5SerralheriaDescricao  *string `json:"q5_serralheria_descricao"`
	Q5InstalacaoEletricaObs *string `json:"q5_instalacao_eletrica_obs"`

	LocalizacaoImagem1URL *string `json:"localizacao_imagem1_url"`
	LocalizacaoImagem2URL *string `json:"localizacao_imagem2_url"`

	PreTrabalhoAltura       *bool   `json:"pre_trabalho_altura"`
	PrePlataforma           *bool   `json:"pre_plataforma"`
	PrePlataformaModelo     *string `json:"pre_plataforma_modelo"`
	PrePlataformaDias       *int    `json:"pre_plataforma_dias"`
	PreForaHorarioComercial *bool   `json:"pre_fora_horario_comercial"`
	PreVeiculoNortetel      *bool   `json:"pre_veiculo_nortetel"`
	PreContainerMateriais   *bool   `json:"pre_container_materiais"`

	EncarregadoDias         *int `json:"encarregado_dias"`
	InstaladorDias          *int `json:"instalador_dias"`
	AuxiliarDias            *int `json:"auxiliar_dias"`
	TecnicoDeInstalacaoDias *int `json:"tecnico_de_instalacao_dias"`
	TecnicoEmSegurancaDias  *int `json:"tecnico_em_seguranca_dias"`

	EncarregadoHoraExtra         *int `json:"encarregado_hora_extra"`
	InstaladorHoraExtra          *int `json:"instalador_hora_extra"`
	AuxiliarHoraExtra            *int `json:"auxiliar_hora_extra"`
	TecnicoDeInstalacaoHoraExtra *int `json:"tecnico_de_instalacao_hora_extra"`
	TecnicoEmSegurancaHoraExtra  *int `json:"tecnico_em_seguranca_hora_extra"`

	EncarregadoTrabalhoDomingo         *int `json:"encarregado_trabalho_domingo"`
	InstaladorTrabalhoDomingo          *int `json:"instalador_trabalho_domingo"`
	AuxiliarTrabalhoDomingo            *int `json:"auxiliar_trabalho_domingo"`
	TecnicoDeInstalacaoTrabalhoDomingo *int `json:"tecnico_de_instalacao_trabalho_domingo"`
	TecnicoEmSegurancaTrabalhoDomingo  *int `json:"tecnico_em_seguranca_trabalho_domingo"`

	AlmocoQtd *int `json:"almoco_qtd"`
	LancheQtd *int `json:"lanche_qtd"`

	CronogramaExecucao   *bool `json:"cronograma_execucao"`
	DiasInstalacao       *int  `json:"dias_instalacao"`
	AsBuilt              *bool `json:"as_built"`
	DiasEntregaRelatorio *int  `json:"dias_entrega_relatorio"`
	Art                  *bool `json:"art"`

	Status *string `json:"status"`
}

func ptrVal[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// setOpt aplica src sobre um campo opcional. src nulo significa
// "não informado"; valores iguais não geram alteração.
func setOpt[T comparable](alts *[]Alteracao, campo string, dst **T, src *T) {
	if src == nil {
		return
	}
	if *dst != nil && **dst == *src {
		return
	}
	*alts = append(*alts, Alteracao{Campo: campo, Antes: ptrVal(*dst), Depois: *src})
	v := *src
	*dst = &v
}

// setReq é o equivalente de setOpt para campos obrigatórios (não-ponteiro).
func setReq[T comparable](alts *[]Alteracao, campo string, dst *T, src *T) {
	if src == nil || *dst == *src {
		return
	}
	*alts = append(*alts, Alteracao{Campo: campo, Antes: *dst, Depois: *src})
	*dst = *src
}

// Apply grava sobre av todos os campos informados no patch e devolve, na
// ordem do formulário, uma entrada {campo, antes, depois} para cada campo
// cujo valor efetivamente mudou. Campos omitidos ou enviados com o mesmo
// valor não geram entrada. Data em formato inválido aborta sem tocar em av.
func (p *AvaliacaoPatch) Apply(av *Avaliacao) ([]Alteracao, error) {
	var novaData *Date
	if p.DataAvaliacao != nil {
		d, err := ParseDate(*p.DataAvaliacao)
		if err != nil {
			return nil, err
		}
		novaData = &d
	}

	var alts []Alteracao

	setOpt(&alts, "equipe", &av.Equipe, p.Equipe)
	setOpt(&alts, "responsavel_avaliacao", &av.ResponsavelAvaliacao, p.ResponsavelAvaliacao)
	setOpt(&alts, "tipo_formulario", &av.TipoFormulario, p.TipoFormulario)

	setReq(&alts, "cliente_nome", &av.ClienteNome, p.ClienteNome)
	setOpt(&alts, "objeto", &av.Objeto, p.Objeto)
	setOpt(&alts, "local", &av.Local, p.Local)
	if novaData != nil && novaData.String() != av.DataAvaliacao.String() {
		alts = append(alts, Alteracao{Campo: "data_avaliacao", Antes: av.DataAvaliacao.String(), Depois: novaData.String()})
		av.DataAvaliacao = *novaData
	}
	setOpt(&alts, "contato", &av.Contato, p.Contato)
	setOpt(&alts, "email_cliente", &av.EmailCliente, p.EmailCliente)

	setOpt(&alts, "escopo_texto", &av.EscopoTexto, p.EscopoTexto)
	setOpt(&alts, "servico_fora_montes_claros", &av.ServicoForaMontesClaros, p.ServicoForaMontesClaros)
	setOpt(&alts, "servico_intermediario", &av.ServicoIntermediario, p.ServicoIntermediario)

	setOpt(&alts, "q1_categoria_cab", &av.Q1CategoriaCab, p.Q1CategoriaCab)
	setOpt(&alts, "q1_blindado", &av.Q1Blindado, p.Q1Blindado)
	setOpt(&alts, "q1_novo_patch_panel", &av.Q1NovoPatchPanel, p.Q1NovoPatchPanel)
	setOpt(&alts, "q1_incluir_guia", &av.Q1IncluirGuia, p.Q1IncluirGuia)
	setOpt(&alts, "q1_qtd_pontos_rede", &av.Q1QtdPontosRede, p.Q1QtdPontosRede)
	setOpt(&alts, "q1_qtd_cabos", &av.Q1QtdCabos, p.Q1QtdCabos)
	setOpt(&alts, "q1_qtd_portas_patch_panel", &av.Q1QtdPortasPatchPanel, p.Q1QtdPortasPatchPanel)
	setOpt(&alts, "q1_qtd_patch_cords", &av.Q1QtdPatchCords, p.Q1QtdPatchCords)
	setOpt(&alts, "q1_marca_cab", &av.Q1MarcaCab, p.Q1MarcaCab)
	setOpt(&alts, "q1_modelo_patch_panel", &av.Q1ModeloPatchPanel, p.Q1ModeloPatchPanel)
	setOpt(&alts, "q1_qtd_guias_cabos", &av.Q1QtdGuiasCabos, p.Q1QtdGuiasCabos)
	setOpt(&alts, "q1_patch_cords_modelo", &av.Q1PatchCordsModelo, p.Q1PatchCordsModelo)
	setOpt(&alts, "q1_patch_cords_cor", &av.Q1PatchCordsCor, p.Q1PatchCordsCor)
	setOpt(&alts, "q1_patch_panel_existente_nome", &av.Q1PatchPanelExistenteNome, p.Q1PatchPanelExistenteNome)

	setOpt(&alts, "q2_novo_switch", &av.Q2NovoSwitch, p.Q2NovoSwitch)
	setOpt(&alts, "q2_switch_poe", &av.Q2SwitchPoe, p.Q2SwitchPoe)
	setOpt(&alts, "q2_rede_industrial", &av.Q2RedeIndustrial, p.Q2RedeIndustrial)
	setOpt(&alts, "q2_qtd_pontos_rede", &av.Q2QtdPontosRede, p.Q2QtdPontosRede)
	setOpt(&alts, "q2_qtd_portas_switch", &av.Q2QtdPortasSwitch, p.Q2QtdPortasSwitch)
	setOpt(&alts, "q2_fornecedor_switch", &av.Q2FornecedorSwitch, p.Q2FornecedorSwitch)
	setOpt(&alts, "q2_modelo_switch", &av.Q2ModeloSwitch, p.Q2ModeloSwitch)
	setOpt(&alts, "q2_switch_foto_url", &av.Q2SwitchFotoURL, p.Q2SwitchFotoURL)
	setOpt(&alts, "q2_switch_existente_nome", &av.Q2SwitchExistenteNome, p.Q2SwitchExistenteNome)
	setOpt(&alts, "q2_observacoes", &av.Q2Observacoes, p.Q2Observacoes)

	setOpt(&alts, "q3_tipo_fibra", &av.Q3TipoFibra, p.Q3TipoFibra)
	setOpt(&alts, "q3_qtd_fibras_por_cabo", &av.Q3QtdFibrasPorCabo, p.Q3QtdFibrasPorCabo)
	setOpt(&alts, "q3_tipo_conector", &av.Q3TipoConector, p.Q3TipoConector)
	setOpt(&alts, "q3_novo_dio", &av.Q3NovoDIO, p.Q3NovoDIO)
	setOpt(&alts, "q3_caixa_terminacao", &av.Q3CaixaTerminacao, p.Q3CaixaTerminacao)
	setOpt(&alts, "q3_tipo_cabo_optico", &av.Q3TipoCaboOptico, p.Q3TipoCaboOptico)
	setOpt(&alts, "q3_caixa_emenda", &av.Q3CaixaEmenda, p.Q3CaixaEmenda)
	setOpt(&alts, "q3_qtd_cabos", &av.Q3QtdCabos, p.Q3QtdCabos)
	setOpt(&alts, "q3_tamanho_total_m", &av.Q3TamanhoTotalM, p.Q3TamanhoTotalM)
	setOpt(&alts, "q3_qtd_fibras", &av.Q3QtdFibras, p.Q3QtdFibras)
	setOpt(&alts, "q3_qtd_portas_dio", &av.Q3QtdPortasDIO, p.Q3QtdPortasDIO)
	setOpt(&alts, "q3_qtd_cordoes_opticos", &av.Q3QtdCordoesOpticos, p.Q3QtdCordoesOpticos)
	setOpt(&alts, "q3_marca_cab_optico", &av.Q3MarcaCabOptico, p.Q3MarcaCabOptico)
	setOpt(&alts, "q3_modelo_dio", &av.Q3ModeloDIO, p.Q3ModeloDIO)
	setOpt(&alts, "q3_modelo_cordao_optico", &av.Q3ModeloCordaoOptico, p.Q3ModeloCordaoOptico)
	setOpt(&alts, "q3_observacoes", &av.Q3Observacoes, p.Q3Observacoes)

	setOpt(&alts, "q4_camera", &av.Q4Camera, p.Q4Camera)
	setOpt(&alts, "q4_nvr_dvr", &av.Q4NvrDvr, p.Q4NvrDvr)
	setOpt(&alts, "q4_access_point", &av.Q4AccessPoint, p.Q4AccessPoint)
	setOpt(&alts, "q4_conversor_midia", &av.Q4ConversorMidia, p.Q4ConversorMidia)
	setOpt(&alts, "q4_gbic", &av.Q4Gbic, p.Q4Gbic)
	setOpt(&alts, "q4_switch", &av.Q4Switch, p.Q4Switch)
	setOpt(&alts, "q4_conversor_midia_modelo", &av.Q4ConversorMidiaModelo, p.Q4ConversorMidiaModelo)
	setOpt(&alts, "q4_gbic_modelo", &av.Q4GbicModelo, p.Q4GbicModelo)
	setOpt(&alts, "q4_camera_nova", &av.Q4CameraNova, p.Q4CameraNova)
	setOpt(&alts, "q4_camera_modelo", &av.Q4CameraModelo, p.Q4CameraModelo)
	setOpt(&alts, "q4_camera_qtd", &av.Q4CameraQtd, p.Q4CameraQtd)
	setOpt(&alts, "q4_camera_fornecedor", &av.Q4CameraFornecedor, p.Q4CameraFornecedor)
	setOpt(&alts, "q4_nvr_dvr_modelo", &av.Q4NvrDvrModelo, p.Q4NvrDvrModelo)

	setOpt(&alts, "q5_nova_eletrocalha", &av.Q5NovaEletrocalha, p.Q5NovaEletrocalha)
	setOpt(&alts, "q5_novo_eletroduto", &av.Q5NovoEletroduto, p.Q5NovoEletroduto)
	setOpt(&alts, "q5_novo_rack", &av.Q5NovoRack, p.Q5NovoRack)
	setOpt(&alts, "q5_instalacao_eletrica", &av.Q5InstalacaoEletrica, p.Q5InstalacaoEletrica)
	setOpt(&alts, "q5_nobreak", &av.Q5Nobreak, p.Q5Nobreak)
	setOpt(&alts, "q5_serralheria", &av.Q5Serralheria, p.Q5Serralheria)
	setOpt(&alts, "q5_eletrocalha_modelo", &av.Q5EletrocalhaModelo, p.Q5EletrocalhaModelo)
	setOpt(&alts, "q5_eletrocalha_qtd", &av.Q5EletrocalhaQtd, p.Q5EletrocalhaQtd)
	setOpt(&alts, "q5_eletroduto_modelo", &av.Q5EletrodutoModelo, p.Q5EletrodutoModelo)
	setOpt(&alts, "q5_eletroduto_qtd", &av.Q5EletrodutoQtd, p.Q5EletrodutoQtd)
	setOpt(&alts, "q5_rack_modelo", &av.Q5RackModelo, p.Q5RackModelo)
	setOpt(&alts, "q5_rack_qtd", &av.Q5RackQtd, p.Q5RackQtd)
	setOpt(&alts, "q5_nobreak_modelo", &av.Q5NobreakModelo, p.Q5NobreakModelo)
	setOpt(&alts, "q5_nobreak_qtd", &av.Q5NobreakQtd, p.Q5NobreakQtd)
	setOpt(&alts, "q5_serralheria_descricao", &av.Q5SerralheriaDescricao, p.Q5SerralheriaDescricao)
	setOpt(&alts, "q5_instalacao_eletrica_obs", &av.Q5InstalacaoEletricaObs, p.Q5InstalacaoEletricaObs)

	setOpt(&alts, "localizacao_imagem1_url", &av.LocalizacaoImagem1URL, p.LocalizacaoImagem1URL)
	setOpt(&alts, "localizacao_imagem2_url", &av.LocalizacaoImagem2URL, p.LocalizacaoImagem2URL)

	setOpt(&alts, "pre_trabalho_altura", &av.PreTrabalhoAltura, p.PreTrabalhoAltura)
	setOpt(&alts, "pre_plataforma", &av.PrePlataforma, p.PrePlataforma)
	setOpt(&alts, "pre_plataforma_modelo", &av.PrePlataformaModelo, p.PrePlataformaModelo)
	setOpt(&alts, "pre_plataforma_dias", &av.PrePlataformaDias, p.PrePlataformaDias)
	setOpt(&alts, "pre_fora_horario_comercial", &av.PreForaHorarioComercial, p.PreForaHorarioComercial)
	setOpt(&alts, "pre_veiculo_nortetel", &av.PreVeiculoNortetel, p.PreVeiculoNortetel)
	setOpt(&alts, "pre_container_materiais", &av.PreContainerMateriais, p.PreContainerMateriais)

	setOpt(&alts, "encarregado_dias", &av.EncarregadoDias, p.EncarregadoDias)
	setOpt(&alts, "instalador_dias", &av.InstaladorDias, p.InstaladorDias)
	setOpt(&alts, "auxiliar_dias", &av.AuxiliarDias, p.AuxiliarDias)
	setOpt(&alts, "tecnico_de_instalacao_dias", &av.TecnicoDeInstalacaoDias, p.TecnicoDeInstalacaoDias)
	setOpt(&alts, "tecnico_em_seguranca_dias", &av.TecnicoEmSegurancaDias, p.TecnicoEmSegurancaDias)

	setOpt(&alts, "encarregado_hora_extra", &av.EncarregadoHoraExtra, p.EncarregadoHoraExtra)
	setOpt(&alts, "instalador_hora_extra", &av.InstaladorHoraExtra, p.InstaladorHoraExtra)
	setOpt(&alts, "auxiliar_hora_extra", &av.AuxiliarHoraExtra, p.AuxiliarHoraExtra)
	setOpt(&alts, "tecnico_de_instalacao_hora_extra", &av.TecnicoDeInstalacaoHoraExtra, p.TecnicoDeInstalacaoHoraExtra)
	setOpt(&alts, "tecnico_em_seguranca_hora_extra", &av.TecnicoEmSegurancaHoraExtra, p.TecnicoEmSegurancaHoraExtra)

	setOpt(&alts, "encarregado_trabalho_domingo", &av.EncarregadoTrabalhoDomingo, p.EncarregadoTrabalhoDomingo)
	setOpt(&alts, "instalador_trabalho_domingo", &av.InstaladorTrabalhoDomingo, p.InstaladorTrabalhoDomingo)
	setOpt(&alts, "auxiliar_trabalho_domingo", &av.AuxiliarTrabalhoDomingo, p.AuxiliarTrabalhoDomingo)
	setOpt(&alts, "tecnico_de_instalacao_trabalho_domingo", &av.TecnicoDeInstalacaoTrabalhoDomingo, p.TecnicoDeInstalacaoTrabalhoDomingo)
	setOpt(&alts, "tecnico_em_seguranca_trabalho_domingo", &av.TecnicoEmSegurancaTrabalhoDomingo, p.TecnicoEmSegurancaTrabalhoDomingo)

	setOpt(&alts, "almoco_qtd", &av.AlmocoQtd, p.AlmocoQtd)
	setOpt(&alts, "lanche_qtd", &av.LancheQtd, p.LancheQtd)

	setOpt(&alts, "cronograma_execucao", &av.CronogramaExecucao, p.CronogramaExecucao)
	setOpt(&alts, "dias_instalacao", &av.DiasInstalacao, p.DiasInstalacao)
	setOpt(&alts, "as_built", &av.AsBuilt, p.AsBuilt)
	setOpt(&alts, "dias_entrega_relatorio", &av.DiasEntregaRelatorio, p.DiasEntregaRelatorio)
	setOpt(&alts, "art", &av.Art, p.Art)

	setReq(&alts, "status", &av.Status, p.Status)

	return alts, nil
}
