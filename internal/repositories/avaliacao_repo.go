package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nortetel/avaliacoes-backend/internal/models"
)

// avaliacaoColumns lista as colunas de dados de avaliacoes na ordem do
// formulário. avaliacaoScanDest e avaliacaoArgs DEVEM seguir a mesma ordem.
var avaliacaoColumns = []string{
	"equipe", "responsavel_avaliacao", "tipo_formulario",
	"cliente_nome", "objeto", "local", "data_avaliacao", "contato", "email_cliente",
	"escopo_texto", "servico_fora_montes_claros", "servico_intermediario",

	"q1_categoria_cab", "q1_blindado", "q1_novo_patch_panel", "q1_incluir_guia",
	"q1_qtd_pontos_rede", "q1_qtd_cabos", "q1_qtd_portas_patch_panel", "q1_qtd_patch_cords",
	"q1_marca_cab", "q1_modelo_patch_panel", "q1_qtd_guias_cabos",
	"q1_patch_cords_modelo", "q1_patch_cords_cor", "q1_patch_panel_existente_nome",

	"q2_novo_switch", "q2_switch_poe", "q2_rede_industrial",
	"q2_qtd_pontos_rede", "q2_qtd_portas_switch", "q2_fornecedor_switch",
	"q2_modelo_switch", "q2_switch_foto_url", "q2_switch_existente_nome", "q2_observacoes",

	"q3_tipo_fibra", "q3_qtd_fibras_por_cabo", "q3_tipo_conector", "q3_novo_dio",
	"q3_caixa_terminacao", "q3_tipo_cabo_optico", "q3_caixa_emenda", "q3_qtd_cabos",
	"q3_tamanho_total_m", "q3_qtd_fibras", "q3_qtd_portas_dio", "q3_qtd_cordoes_opticos",
	"q3_marca_cab_optico", "q3_modelo_dio", "q3_modelo_cordao_optico", "q3_observacoes",

	"q4_camera", "q4_nvr_dvr", "q4_access_point", "q4_conversor_midia", "q4_gbic", "q4_switch",
	"q4_conversor_midia_modelo", "q4_gbic_modelo", "q4_camera_nova",
	"q4_camera_modelo", "q4_camera_qtd", "q4_camera_fornecedor", "q4_nvr_dvr_modelo",

	"q5_nova_eletrocalha", "q5_novo_eletroduto", "q5_novo_rack",
	"q5_instalacao_eletrica", "q5_nobreak", "q5_serralheria",
	"q5_eletrocalha_modelo", "q5_eletrocalha_qtd", "q5_eletroduto_modelo", "q5_eletroduto_qtd",
	"q5_rack_modelo", "q5_rack_qtd", "q5_nobreak_modelo", "q5_nobreak_qtd",
	"q5_serralheria_descricao", "q5_instalacao_eletrica_obs",

	"localizacao_imagem1_url", "localizacao_imagem2_url",

	"pre_trabalho_altura", "pre_plataforma", "pre_plataforma_modelo", "pre_plataforma_dias",
	"pre_fora_horario_comercial", "pre_veiculo_nortetel", "pre_container_materiais",

	"encarregado_dias", "instalador_dias", "auxiliar_dias",
	"tecnico_de_instalacao_dias", "tecnico_em_seguranca_dias",
	"encarregado_hora_extra", "instalador_hora_extra", "auxiliar_hora_extra",
	"tecnico_de_instalacao_hora_extra", "tecnico_em_seguranca_hora_extra",
	"encarregado_trabalho_domingo", "instalador_trabalho_domingo", "auxiliar_trabalho_domingo",
	"tecnico_de_instalacao_trabalho_domingo", "tecnico_em_seguranca_trabalho_domingo",

	"almoco_qtd", "lanche_qtd",

	"cronograma_execucao", "dias_instalacao", "as_built", "dias_entrega_relatorio", "art",

	"status",
}

var (
	avaliacaoSelectSQL string
	avaliacaoInsertSQL string
	avaliacaoUpdateSQL string
)

func init() {
	cols := strings.Join(avaliacaoColumns, ", ")

	avaliacaoSelectSQL = "SELECT id, " + cols + ", criado_em, atualizado_em FROM avaliacoes"

	ph := make([]string, len(avaliacaoColumns))
	sets := make([]string, len(avaliacaoColumns))
	for i, c := range avaliacaoColumns {
		ph[i] = "$" + strconv.Itoa(i+1)
		sets[i] = c + " = $" + strconv.Itoa(i+1)
	}
	avaliacaoInsertSQL = "INSERT INTO avaliacoes (" + cols + ") VALUES (" +
		strings.Join(ph, ", ") + ") RETURNING id, criado_em, atualizado_em"
	avaliacaoUpdateSQL = "UPDATE avaliacoes SET " + strings.Join(sets, ", ") +
		", atualizado_em = now() WHERE id = $" + strconv.Itoa(len(avaliacaoColumns)+1) +
		" RETURNING atualizado_em"
}

// avaliacaoArgs devolve os valores das colunas de dados na ordem de
// avaliacaoColumns, para INSERT/UPDATE.
func avaliacaoArgs(a *models.Avaliacao) []any {
	return []any{
		a.Equipe, a.ResponsavelAvaliacao, a.TipoFormulario,
		a.ClienteNome, a.Objeto, a.Local, a.DataAvaliacao, a.Contato, a.EmailCliente,
		a.EscopoTexto, a.ServicoForaMontesClaros, a.ServicoIntermediario,

		a.Q1CategoriaCab, a.Q1Blindado, a.Q1NovoPatchPanel, a.Q1IncluirGuia,
		a.Q1QtdPontosRede, a.Q1QtdCabos, a.Q1QtdPortasPatchPanel, a.Q1QtdPatchCords,
		a.Q1MarcaCab, a.Q1ModeloPatchPanel, a.Q1QtdGuiasCabos,
		a.Q1PatchCordsModelo, a.Q1PatchCordsCor, a.Q1PatchPanelExistenteNome,

		a.Q2NovoSwitch, a.Q2SwitchPoe, a.Q2RedeIndustrial,
		a.Q2QtdPontosRede, a.Q2QtdPortasSwitch, a.Q2FornecedorSwitch,
		a.Q2ModeloSwitch, a.Q2SwitchFotoURL, a.Q2SwitchExistenteNome, a.Q2Observacoes,

		a.Q3TipoFibra, a.Q3QtdFibrasPorCabo, a.Q3TipoConector, a.Q3NovoDIO,
		a.Q3CaixaTerminacao, a.Q3TipoCaboOptico, a.Q3CaixaEmenda, a.Q3QtdCabos,
		a.Q3TamanhoTotalM, a.Q3QtdFibras, a.Q3QtdPortasDIO, a.Q3QtdCordoesOpticos,
		a.Q3MarcaCabOptico, a.Q3ModeloDIO, a.Q3ModeloCordaoOptico, a.Q3Observacoes,

		a.Q4Camera, a.Q4NvrDvr, a.Q4AccessPoint, a.Q4ConversorMidia, a.Q4Gbic, a.Q4Switch,
		a.Q4ConversorMidiaModelo, a.Q4GbicModelo, a.Q4CameraNova,
		a.Q4CameraModelo, a.Q4CameraQtd, a.Q4CameraFornecedor, a.Q4NvrDvrModelo,

		a.Q5NovaEletrocalha, a.Q5NovoEletroduto, a.Q5NovoRack,
		a.Q5InstalacaoEletrica, a.Q5Nobreak, a.Q5Serralheria,
		a.Q5EletrocalhaModelo, a.Q5EletrocalhaQtd, a.Q5EletrodutoModelo, a.Q5EletrodutoQtd,
		a.Q5RackModelo, a.Q5RackQtd, a.Q5NobreakModelo, a.Q5NobreakQtd,
		a.Q5SerralheriaDescricao, a.Q5InstalacaoEletricaObs,

		a.LocalizacaoImagem1URL, a.LocalizacaoImagem2URL,

		a.PreTrabalhoAltura, a.PrePlataforma, a.PrePlataformaModelo, a.PrePlataformaDias,
		a.PreForaHorarioComercial, a.PreVeiculoNortetel, a.PreContainerMateriais,

		a.EncarregadoDias, a.InstaladorDias, a.AuxiliarDias,
		a.TecnicoDeInstalacaoDias, a.TecnicoEmSegurancaDias,
		a.EncarregadoHoraExtra, a.InstaladorHoraExtra, a.AuxiliarHoraExtra,
		a.TecnicoDeInstalacaoHoraExtra, a.TecnicoEmSegurancaHoraExtra,
		a.EncarregadoTrabalhoDomingo, a.InstaladorTrabalhoDomingo, a.AuxiliarTrabalhoDomingo,
		a.TecnicoDeInstalacaoTrabalhoDomingo, a.TecnicoEmSegurancaTrabalhoDomingo,

		a.AlmocoQtd, a.LancheQtd,

		a.CronogramaExecucao, a.DiasInstalacao, a.AsBuilt, a.DiasEntregaRelatorio, a.Art,

		a.Status,
	}
}

// avaliacaoScanDest devolve os ponteiros das colunas de dados na ordem de
// avaliacaoColumns, para Scan.
func avaliacaoScanDest(a *models.Avaliacao) []any {
	return []any{
		&a.Equipe, &a.ResponsavelAvaliacao, &a.TipoFormulario,
		&a.ClienteNome, &a.Objeto, &a.Local, &a.DataAvaliacao, &a.Contato, &a.EmailCliente,
		&a.EscopoTexto, &a.ServicoForaMontesClaros, &a.ServicoIntermediario,

		&a.Q1CategoriaCab, &a.Q1Blindado, &a.Q1NovoPatchPanel, &a.Q1IncluirGuia,
		&a.Q1QtdPontosRede, &a.Q1QtdCabos, &a.Q1QtdPortasPatchPanel, &a.Q1QtdPatchCords,
		&a.Q1MarcaCab, &a.Q1ModeloPatchPanel, &a.Q1QtdGuiasCabos,
		&a.Q1PatchCordsModelo, &a.Q1PatchCordsCor, &a.Q1PatchPanelExistenteNome,

		&a.Q2NovoSwitch, &a.Q2SwitchPoe, &a.Q2RedeIndustrial,
		&a.Q2QtdPontosRede, &a.Q2QtdPortasSwitch, &a.Q2FornecedorSwitch,
		&a.Q2ModeloSwitch, &a.Q2SwitchFotoURL, &a.Q2SwitchExistenteNome, &a.Q2Observacoes,

		&a.Q3TipoFibra, &a.Q3QtdFibrasPorCabo, &a.Q3TipoConector, &a.Q3NovoDIO,
		&a.Q3CaixaTerminacao, &a.Q3TipoCaboOptico, &a.Q3CaixaEmenda, &a.Q3QtdCabos,
		&a.Q3TamanhoTotalM, &a.Q3QtdFibras, &a.Q3QtdPortasDIO, &a.Q3QtdCordoesOpticos,
		&a.Q3MarcaCabOptico, &a.Q3ModeloDIO, &a.Q3ModeloCordaoOptico, &a.Q3Observacoes,

		&a.Q4Camera, &a.Q4NvrDvr, &a.Q4AccessPoint, &a.Q4ConversorMidia, &a.Q4Gbic, &a.Q4Switch,
		&a.Q4ConversorMidiaModelo, &a.Q4GbicModelo, &a.Q4CameraNova,
		&a.Q4CameraModelo, &a.Q4CameraQtd, &a.Q4CameraFornecedor, &a.Q4NvrDvrModelo,

		&a.Q5NovaEletrocalha, &a.Q5NovoEletroduto, &a.Q5NovoRack,
		&a.Q5InstalacaoEletrica, &a.Q5Nobreak, &a.Q5Serralheria,
		&a.Q5EletrocalhaModelo, &a.Q5EletrocalhaQtd, &a.Q5EletrodutoModelo, &a.Q5EletrodutoQtd,
		&a.Q5RackModelo, &a.Q5RackQtd, &a.Q5NobreakModelo, &a.Q5NobreakQtd,
		&a.Q5SerralheriaDescricao, &a.Q5InstalacaoEletricaObs,

		&a.LocalizacaoImagem1URL, &a.LocalizacaoImagem2URL,

		&a.PreTrabalhoAltura, &a.PrePlataforma, &a.PrePlataformaModelo, &a.PrePlataformaDias,
		&a.PreForaHorarioComercial, &a.PreVeiculoNortetel, &a.PreContainerMateriais,

		&a.EncarregadoDias, &a.InstaladorDias, &a.AuxiliarDias,
		&a.TecnicoDeInstalacaoDias, &a.TecnicoEmSegurancaDias,
		&a.EncarregadoHoraExtra, &a.InstaladorHoraExtra, &a.AuxiliarHoraExtra,
		&a.TecnicoDeInstalacaoHoraExtra, &a.TecnicoEmSegurancaHoraExtra,
		&a.EncarregadoTrabalhoDomingo, &a.InstaladorTrabalhoDomingo, &a.AuxiliarTrabalhoDomingo,
		&a.TecnicoDeInstalacaoTrabalhoDomingo, &a.TecnicoEmSegurancaTrabalhoDomingo,

		&a.AlmocoQtd, &a.LancheQtd,

		&a.CronogramaExecucao, &a.DiasInstalacao, &a.AsBuilt, &a.DiasEntregaRelatorio, &a.Art,

		&a.Status,
	}
}

func scanAvaliacao(row interface{ Scan(dest ...any) error }) (*models.Avaliacao, error) {
	var a models.Avaliacao
	dest := make([]any, 0, len(avaliacaoColumns)+3)
	dest = append(dest, &a.ID)
	dest = append(dest, avaliacaoScanDest(&a)...)
	dest = append(dest, &a.CriadoEm, &a.AtualizadoEm)
	if err := row.Scan(dest...); err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

type AvaliacaoRepo struct {
	pool *pgxpool.Pool
}

func NewAvaliacaoRepo(pool *pgxpool.Pool) *AvaliacaoRepo {
	return &AvaliacaoRepo{pool: pool}
}

// Create insere a avaliação e a linha CRIAR de auditoria na mesma transação.
func (r *AvaliacaoRepo) Create(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, avaliacaoInsertSQL, avaliacaoArgs(av)...).
		Scan(&av.ID, &av.CriadoEm, &av.AtualizadoEm)
	if err != nil {
		return err
	}

	if err := logAvaliacaoEvent(ctx, tx, av.ID, usuario, models.AcaoCriar, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *AvaliacaoRepo) GetByID(ctx context.Context, id int64) (*models.Avaliacao, error) {
	return scanAvaliacao(r.pool.QueryRow(ctx, avaliacaoSelectSQL+" WHERE id = $1", id))
}

func (r *AvaliacaoRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM avaliacoes WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *AvaliacaoRepo) List(ctx context.Context, skip, limit int) ([]models.Avaliacao, error) {
	rows, err := r.pool.Query(ctx,
		avaliacaoSelectSQL+" ORDER BY id ASC OFFSET $1 LIMIT $2", skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var avaliacoes []models.Avaliacao
	for rows.Next() {
		av, err := scanAvaliacao(rows)
		if err != nil {
			return nil, err
		}
		avaliacoes = append(avaliacoes, *av)
	}
	return avaliacoes, rows.Err()
}

// Update regrava todas as colunas de dados e registra EDITAR na mesma
// transação. É chamado mesmo quando o diff veio vazio (escrita no-op).
func (r *AvaliacaoRepo) Update(ctx context.Context, av *models.Avaliacao, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := append(avaliacaoArgs(av), av.ID)
	if err := tx.QueryRow(ctx, avaliacaoUpdateSQL, args...).Scan(&av.AtualizadoEm); err != nil {
		return notFound(err)
	}

	if err := logAvaliacaoEvent(ctx, tx, av.ID, usuario, models.AcaoEditar, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// --- Equipamentos ---

func (r *AvaliacaoRepo) AddEquipamento(ctx context.Context, e *models.Equipamento, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO avaliacoes_equipamentos (avaliacao_id, equipamento, modelo, quantidade, fabricante)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.AvaliacaoID, e.Equipamento, e.Modelo, e.Quantidade, e.Fabricante).Scan(&e.ID)
	if err != nil {
		return err
	}

	if err := logAvaliacaoEvent(ctx, tx, e.AvaliacaoID, usuario, models.AcaoAddEquipamento, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *AvaliacaoRepo) GetEquipamento(ctx context.Context, id int64) (*models.Equipamento, error) {
	var e models.Equipamento
	err := r.pool.QueryRow(ctx, `
		SELECT id, avaliacao_id, equipamento, modelo, quantidade, fabricante
		FROM avaliacoes_equipamentos WHERE id = $1
	`, id).Scan(&e.ID, &e.AvaliacaoID, &e.Equipamento, &e.Modelo, &e.Quantidade, &e.Fabricante)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *AvaliacaoRepo) ListEquipamentos(ctx context.Context, avaliacaoID int64) ([]models.Equipamento, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, avaliacao_id, equipamento, modelo, quantidade, fabricante
		FROM avaliacoes_equipamentos WHERE avaliacao_id = $1 ORDER BY id ASC
	`, avaliacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipamentos []models.Equipamento
	for rows.Next() {
		var e models.Equipamento
		if err := rows.Scan(&e.ID, &e.AvaliacaoID, &e.Equipamento, &e.Modelo, &e.Quantidade, &e.Fabricante); err != nil {
			return nil, err
		}
		equipamentos = append(equipamentos, e)
	}
	return equipamentos, rows.Err()
}

func (r *AvaliacaoRepo) RemoveEquipamento(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM avaliacoes_equipamentos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := logAvaliacaoEvent(ctx, tx, avaliacaoID, usuario, models.AcaoRemoverEquipamento, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// --- Outros recursos ---

func (r *AvaliacaoRepo) AddRecurso(ctx context.Context, rec *models.OutroRecurso, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO avaliacoes_outros_recursos (avaliacao_id, descricao, quantidade)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rec.AvaliacaoID, rec.Descricao, rec.Quantidade).Scan(&rec.ID)
	if err != nil {
		return err
	}

	if err := logAvaliacaoEvent(ctx, tx, rec.AvaliacaoID, usuario, models.AcaoAddOutroRecurso, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *AvaliacaoRepo) GetRecurso(ctx context.Context, id int64) (*models.OutroRecurso, error) {
	var rec models.OutroRecurso
	err := r.pool.QueryRow(ctx, `
		SELECT id, avaliacao_id, descricao, quantidade
		FROM avaliacoes_outros_recursos WHERE id = $1
	`, id).Scan(&rec.ID, &rec.AvaliacaoID, &rec.Descricao, &rec.Quantidade)
	if err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *AvaliacaoRepo) ListRecursos(ctx context.Context, avaliacaoID int64) ([]models.OutroRecurso, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, avaliacao_id, descricao, quantidade
		FROM avaliacoes_outros_recursos WHERE avaliacao_id = $1 ORDER BY id ASC
	`, avaliacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recursos []models.OutroRecurso
	for rows.Next() {
		var rec models.OutroRecurso
		if err := rows.Scan(&rec.ID, &rec.AvaliacaoID, &rec.Descricao, &rec.Quantidade); err != nil {
			return nil, err
		}
		recursos = append(recursos, rec)
	}
	return recursos, rows.Err()
}

func (r *AvaliacaoRepo) RemoveRecurso(ctx context.Context, id, avaliacaoID int64, usuario string, detalhes *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM avaliacoes_outros_recursos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := logAvaliacaoEvent(ctx, tx, avaliacaoID, usuario, models.AcaoRemoverOutroRec, detalhes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
