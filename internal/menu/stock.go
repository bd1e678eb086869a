package menu

import (
	"context"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
)

func (m *Menu) stockActions() []action {
	return []action{
		{"Exibir Estoque", func(ctx context.Context) error { return m.show(ctx, app.DomainStock) }},
		{"Cadastrar Item", m.receiveStock},
		{"Remover Item", m.issueStock},
		{"Verificar Disponibilidade", m.checkAvailability},
		{"Consultar Quantidade", m.quantityOf},
		{"Atualizar Quantidade", m.setStockQuantity},
	}
}

func (m *Menu) receiveStock(ctx context.Context) error {
	m.header("Adicionar Item ao Estoque")
	item, err := m.selectItem("ID do Item (do catálogo): ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainStock, "receive", func() (int, error) {
		return item.ID(), m.app.Stock.Receive(item.ID(), item.Name(), qty)
	})
	if err != nil {
		return err
	}
	m.ok("Item adicionado ao estoque!")
	return nil
}

func (m *Menu) issueStock(ctx context.Context) error {
	id, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade a remover: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainStock, "issue", func() (int, error) {
		return id, m.app.Stock.Issue(id, qty)
	})
	if err != nil {
		return err
	}
	m.ok("Item removido do estoque!")
	return nil
}

func (m *Menu) checkAvailability(context.Context) error {
	id, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade desejada: ")
	if err != nil {
		return err
	}
	if m.app.Stock.CheckAvailability(id, qty) {
		m.ok("Quantidade disponível em estoque!")
	} else {
		m.warn("Quantidade insuficiente em estoque!")
	}
	return nil
}

func (m *Menu) quantityOf(context.Context) error {
	id, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	e, ok := m.app.Stock.Get(id)
	if !ok {
		m.warn("Item não encontrado no estoque!")
		return nil
	}
	m.println("\n" + e.Name + " - Quantidade em estoque: " + itoa(e.Quantity))
	return nil
}

func (m *Menu) setStockQuantity(ctx context.Context) error {
	id, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Nova Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainStock, "set_quantity", func() (int, error) {
		return id, m.app.Stock.SetQuantity(id, qty)
	})
	if err != nil {
		return err
	}
	m.ok("Quantidade atualizada!")
	return nil
}
